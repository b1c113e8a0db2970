package arrange

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arrangementYAML = `title: Night Drive
bpm: 110
ticks_per_beat: 960
tracks:
  - name: lead
    channel: 0
    velocity: 90
    notes:
      - pitch: C4
        start: 0
        duration: 1
        velocity: 120
      - pitch: 64
        start: 1
        duration: 0.5
  - name: bass
    channel: 1
    notes:
      - pitch: A1
        start: 0
        duration: 2
`

func TestParseArrangement(t *testing.T) {
	arr, err := Parse([]byte(arrangementYAML))
	require.NoError(t, err)

	assert.Equal(t, "Night Drive", arr.Title)
	assert.Equal(t, 110.0, arr.BPM)
	assert.Equal(t, uint16(960), arr.TicksPerBeat)
	require.Len(t, arr.Tracks, 2)

	tracks, err := arr.NoteTracks()
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	// Note velocity wins over the track default, which wins over the
	// package default.
	want0 := []contracts.NoteEvent{
		{Pitch: 60, Velocity: 120, Channel: 0, Start: 0, Duration: 1},
		{Pitch: 64, Velocity: 90, Channel: 0, Start: 1, Duration: 0.5},
	}
	assert.Equal(t, want0, tracks[0])

	want1 := []contracts.NoteEvent{
		{Pitch: 33, Velocity: 96, Channel: 1, Start: 0, Duration: 2},
	}
	assert.Equal(t, want1, tracks[1])
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("tracks: ["))
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse arrangement")
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.yaml")
	require.NoError(t, os.WriteFile(path, []byte(arrangementYAML), 0o644))

	arr, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Night Drive", arr.Title)
	assert.Len(t, arr.Tracks, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "read arrangement")
}

func TestNoteTracksRejectsBadNote(t *testing.T) {
	arr := &Arrangement{
		Tracks: []TrackSpec{
			{Name: "x", Notes: []NoteSpec{{Pitch: "60", Start: 0, Duration: 0}}},
		},
	}
	_, err := arr.NoteTracks()
	assert.ErrorIs(t, err, contracts.ErrNonPositiveDuration)
	assert.ErrorContains(t, err, `track "x" note 0`)
}

func TestNoteTracksRejectsBadPitchName(t *testing.T) {
	arr := &Arrangement{
		Tracks: []TrackSpec{
			{Name: "x", Notes: []NoteSpec{{Pitch: "H2", Start: 0, Duration: 1}}},
		},
	}
	_, err := arr.NoteTracks()
	assert.ErrorIs(t, err, ErrPitchName)
}
