package encoder

import (
	"fmt"
	"math"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
)

// beatsToTicks quantizes a beat position to an absolute tick count at the
// given resolution. Rounding is half away from zero, fixed so independent
// implementations agree bit for bit.
func beatsToTicks(beats float64, ticksPerBeat uint16) (int64, error) {
	t := math.Round(beats * float64(ticksPerBeat))
	if t > maxVLQ {
		return 0, fmt.Errorf("%w: %g beats at %d ticks per beat", contracts.ErrVLQOverflow, beats, ticksPerBeat)
	}
	return int64(t), nil
}

// noteTicks quantizes a note's start and duration. A duration that rounds to
// zero ticks is rejected; one tick is the minimum audible length.
func noteTicks(n contracts.NoteEvent, ticksPerBeat uint16) (start, duration int64, err error) {
	if start, err = beatsToTicks(n.Start, ticksPerBeat); err != nil {
		return 0, 0, err
	}
	if duration, err = beatsToTicks(n.Duration, ticksPerBeat); err != nil {
		return 0, 0, err
	}
	if duration < 1 {
		return 0, 0, fmt.Errorf("%w: %g beats at %d ticks per beat", contracts.ErrZeroTickDuration, n.Duration, ticksPerBeat)
	}
	if start+duration > maxVLQ {
		return 0, 0, fmt.Errorf("%w: note ends at tick %d", contracts.ErrVLQOverflow, start+duration)
	}
	return start, duration, nil
}
