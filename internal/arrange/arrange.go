package arrange

import (
	"fmt"
	"os"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
	"gopkg.in/yaml.v3"
)

// defaultVelocity applies to notes that set no velocity of their own and
// whose track sets none either.
const defaultVelocity uint8 = 96

// Arrangement is a declarative description of a sequence file, loaded from
// YAML. Zero BPM or ticks-per-beat mean "use the writer's defaults".
type Arrangement struct {
	Title        string      `yaml:"title"`
	BPM          float64     `yaml:"bpm"`
	TicksPerBeat uint16      `yaml:"ticks_per_beat"`
	Tracks       []TrackSpec `yaml:"tracks"`
}

// TrackSpec is one named track of an arrangement.
type TrackSpec struct {
	Name     string     `yaml:"name"`
	Channel  uint8      `yaml:"channel"`
	Velocity uint8      `yaml:"velocity"` // default velocity for the track's notes
	Notes    []NoteSpec `yaml:"notes"`
}

// PitchSpec is a pitch as written in an arrangement: a bare note number or a
// scientific name such as "C4" or "F#3".
type PitchSpec string

// UnmarshalYAML keeps the scalar's raw text, so bare numbers need no quoting.
func (p *PitchSpec) UnmarshalYAML(value *yaml.Node) error {
	*p = PitchSpec(value.Value)
	return nil
}

// NoteSpec is one note line of a track.
type NoteSpec struct {
	Pitch    PitchSpec `yaml:"pitch"`
	Start    float64   `yaml:"start"`
	Duration float64   `yaml:"duration"`
	Velocity uint8     `yaml:"velocity,omitempty"`
}

// Load reads and parses an arrangement file.
func Load(path string) (*Arrangement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read arrangement: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML into an Arrangement.
func Parse(data []byte) (*Arrangement, error) {
	var a Arrangement
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse arrangement: %w", err)
	}
	return &a, nil
}

// NoteTracks converts the arrangement into per-track note lists ready for a
// sequence writer, resolving pitch names and velocity defaults.
func (a *Arrangement) NoteTracks() ([][]contracts.NoteEvent, error) {
	tracks := make([][]contracts.NoteEvent, len(a.Tracks))
	for i, spec := range a.Tracks {
		notes := make([]contracts.NoteEvent, 0, len(spec.Notes))
		for j, ns := range spec.Notes {
			pitch, err := parsePitch(string(ns.Pitch))
			if err != nil {
				return nil, fmt.Errorf("track %q note %d: %w", spec.Name, j, err)
			}
			velocity := ns.Velocity
			if velocity == 0 {
				velocity = spec.Velocity
			}
			if velocity == 0 {
				velocity = defaultVelocity
			}
			n, err := contracts.NewNoteEvent(pitch, velocity, spec.Channel, ns.Start, ns.Duration)
			if err != nil {
				return nil, fmt.Errorf("track %q note %d: %w", spec.Name, j, err)
			}
			notes = append(notes, n)
		}
		tracks[i] = notes
	}
	return tracks, nil
}
