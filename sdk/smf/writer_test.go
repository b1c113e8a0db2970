package smf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleNote(t *testing.T) [][]contracts.NoteEvent {
	t.Helper()
	note, err := contracts.NewNoteEvent(60, 100, 0, 0, 1)
	require.NoError(t, err)
	return [][]contracts.NoteEvent{{note}}
}

func TestNewSequenceWriterDefaults(t *testing.T) {
	writer, err := NewSequenceWriter()
	require.NoError(t, err)

	data, err := writer.WriteSequence(singleNote(t))
	require.NoError(t, err)

	header := []byte{
		'M', 'T', 'h', 'd', 0x00, 0x00, 0x00, 0x06,
		0x00, 0x01, 0x00, 0x01, 0x01, 0xE0, // 480 ticks per beat
	}
	assert.Equal(t, header, data[:14])
	// First event of the first track is the default 120 BPM tempo.
	assert.Equal(t, []byte{0x00, 0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20}, data[22:29])
}

func TestNewSequenceWriterOverrides(t *testing.T) {
	writer, err := NewSequenceWriter(
		contracts.WithTicksPerBeat(960),
		contracts.WithTempo(90),
	)
	require.NoError(t, err)

	data, err := writer.WriteSequence(singleNote(t))
	require.NoError(t, err)

	assert.Equal(t, []byte{0x03, 0xC0}, data[12:14])
	// 60000000 / 90 rounds to 666667 microseconds per beat.
	assert.Equal(t, []byte{0x0A, 0x2C, 0x2B}, data[26:29])
}

func TestNewSequenceWriterRejectsBadOptions(t *testing.T) {
	_, err := NewSequenceWriter(contracts.WithTicksPerBeat(0x8000))
	assert.ErrorIs(t, err, contracts.ErrTicksPerBeatRange)

	_, err = NewSequenceWriter(contracts.WithTempo(-10))
	assert.ErrorIs(t, err, contracts.ErrTempoRange)
}

func TestNewSequenceWriterLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "writer.log")

	_, err := NewSequenceWriter(contracts.WithLogFile(path))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
