package contracts

import (
	"fmt"
	"math"
)

// Format limits for note parameters and the file header.
const (
	MaxPitch        = 127
	MaxVelocity     = 127
	MaxChannel      = 15
	MaxTicksPerBeat = 0x7FFF
)

// MIDICommand represents the status nibble of a channel voice event.
type MIDICommand byte

const (
	// NoteOn is the MIDI command for a Note On event (0x90).
	NoteOn MIDICommand = 0x90
	// NoteOff is the MIDI command for a Note Off event (0x80).
	NoteOff MIDICommand = 0x80
)

// NoteEvent represents one note in a track timeline. Times are expressed in
// beats; the writer quantizes them to ticks at its configured resolution.
// A NoteEvent is immutable once built and is consumed exactly once per encode.
type NoteEvent struct {
	Pitch    uint8   // MIDI note number (0-127).
	Velocity uint8   // Attack strength (0-127).
	Channel  uint8   // Instrument stream within the track (0-15).
	Start    float64 // Position of the attack, in beats from the start of the track.
	Duration float64 // Length in beats; must be positive and at least one tick long.
}

// NewNoteEvent builds a NoteEvent and validates it immediately, so invalid
// parameters are reported at construction rather than during encoding.
func NewNoteEvent(pitch, velocity, channel uint8, start, duration float64) (NoteEvent, error) {
	n := NoteEvent{Pitch: pitch, Velocity: velocity, Channel: channel, Start: start, Duration: duration}
	if err := n.Validate(); err != nil {
		return NoteEvent{}, err
	}
	return n, nil
}

// Validate checks the note's parameters against the format's ranges.
func (n NoteEvent) Validate() error {
	switch {
	case n.Pitch > MaxPitch:
		return fmt.Errorf("%w: %d", ErrPitchRange, n.Pitch)
	case n.Velocity > MaxVelocity:
		return fmt.Errorf("%w: %d", ErrVelocityRange, n.Velocity)
	case n.Channel > MaxChannel:
		return fmt.Errorf("%w: %d", ErrChannelRange, n.Channel)
	case n.Start < 0 || math.IsNaN(n.Start) || math.IsInf(n.Start, 0):
		return fmt.Errorf("%w: %g", ErrStartNegative, n.Start)
	case n.Duration <= 0 || math.IsNaN(n.Duration) || math.IsInf(n.Duration, 0):
		return fmt.Errorf("%w: %g", ErrNonPositiveDuration, n.Duration)
	}
	return nil
}

// End returns the beat position at which the note releases.
func (n NoteEvent) End() float64 {
	return n.Start + n.Duration
}
