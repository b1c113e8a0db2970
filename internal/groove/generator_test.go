package groove

import (
	"encoding/binary"
	"testing"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
	"github.com/djtlb/BeatsPro-sub001/sdk/smf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorUnknownStyle(t *testing.T) {
	_, err := NewGenerator("polka", 1)
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestGeneratorSameSeedSameTracks(t *testing.T) {
	for _, style := range []Style{House, Techno, HipHop, Trap} {
		t.Run(string(style), func(t *testing.T) {
			first, err := NewGenerator(style, 42)
			require.NoError(t, err)
			second, err := NewGenerator(style, 42)
			require.NoError(t, err)

			a, err := first.Tracks(4)
			require.NoError(t, err)
			b, err := second.Tracks(4)
			require.NoError(t, err)

			assert.Equal(t, a, b)
		})
	}
}

func TestGeneratorTrackShape(t *testing.T) {
	const bars = 2
	for _, style := range []Style{House, Techno, HipHop, Trap} {
		t.Run(string(style), func(t *testing.T) {
			gen, err := NewGenerator(style, 7)
			require.NoError(t, err)
			assert.Positive(t, gen.BPM())

			tracks, err := gen.Tracks(bars)
			require.NoError(t, err)
			require.Len(t, tracks, 3)

			channels := []uint8{drumChannel, bassChannel, chordChannel}
			for i, track := range tracks {
				assert.NotEmpty(t, track)
				for _, note := range track {
					assert.NoError(t, note.Validate())
					assert.Equal(t, channels[i], note.Channel)
					assert.Less(t, note.Start, float64(bars)*beatsPerBar)
				}
			}
		})
	}
}

func TestGeneratorBarRange(t *testing.T) {
	gen, err := NewGenerator(House, 1)
	require.NoError(t, err)

	_, err = gen.Tracks(0)
	assert.ErrorIs(t, err, ErrBarRange)
}

func TestGeneratorOutputEncodes(t *testing.T) {
	gen, err := NewGenerator(Trap, 99)
	require.NoError(t, err)
	tracks, err := gen.Tracks(2)
	require.NoError(t, err)

	writer, err := smf.NewSequenceWriter(contracts.WithTempo(gen.BPM()))
	require.NoError(t, err)

	data, err := writer.WriteSequence(tracks)
	require.NoError(t, err)
	assert.Equal(t, []byte("MThd"), data[:4])
	assert.EqualValues(t, 3, binary.BigEndian.Uint16(data[10:12]))
}

func TestStylesSorted(t *testing.T) {
	assert.Equal(t, []string{"hiphop", "house", "techno", "trap"}, Styles())
}
