package contracts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoteEvent(t *testing.T) {
	n, err := NewNoteEvent(60, 100, 3, 0.5, 1.25)
	require.NoError(t, err)

	assert.Equal(t, uint8(60), n.Pitch)
	assert.Equal(t, uint8(100), n.Velocity)
	assert.Equal(t, uint8(3), n.Channel)
	assert.Equal(t, 0.5, n.Start)
	assert.Equal(t, 1.25, n.Duration)
	assert.Equal(t, 1.75, n.End())
}

func TestNewNoteEventValidation(t *testing.T) {
	tests := []struct {
		name     string
		pitch    uint8
		velocity uint8
		channel  uint8
		start    float64
		duration float64
		wantErr  error
	}{
		{"pitch too high", 128, 100, 0, 0, 1, ErrPitchRange},
		{"velocity too high", 60, 200, 0, 0, 1, ErrVelocityRange},
		{"channel too high", 60, 100, 16, 0, 1, ErrChannelRange},
		{"negative start", 60, 100, 0, -0.25, 1, ErrStartNegative},
		{"NaN start", 60, 100, 0, math.NaN(), 1, ErrStartNegative},
		{"infinite start", 60, 100, 0, math.Inf(1), 1, ErrStartNegative},
		{"zero duration", 60, 100, 0, 0, 0, ErrNonPositiveDuration},
		{"negative duration", 60, 100, 0, 0, -1, ErrNonPositiveDuration},
		{"infinite duration", 60, 100, 0, 0, math.Inf(1), ErrNonPositiveDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNoteEvent(tt.pitch, tt.velocity, tt.channel, tt.start, tt.duration)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateBoundaryValues(t *testing.T) {
	n := NoteEvent{Pitch: MaxPitch, Velocity: MaxVelocity, Channel: MaxChannel, Start: 0, Duration: 0.001}
	assert.NoError(t, n.Validate())
}
