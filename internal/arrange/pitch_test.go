package arrange

import (
	"testing"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePitch(t *testing.T) {
	tests := []struct {
		in   string
		want uint8
	}{
		{"60", 60},
		{"0", 0},
		{"127", 127},
		{"C4", 60},
		{"c4", 60},
		{"C#4", 61},
		{"F#3", 54},
		{"Bb2", 46},
		{"bb2", 46},
		{"A0", 21},
		{"G9", 127},
		{"C-1", 0},
		{" C4 ", 60},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePitch(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePitchRejects(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"", ErrPitchName},
		{"H2", ErrPitchName},
		{"C#", ErrPitchName},
		{"128", contracts.ErrPitchRange},
		{"-1", contracts.ErrPitchRange},
		{"G#9", contracts.ErrPitchRange},
		{"C-2", contracts.ErrPitchRange},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := parsePitch(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
