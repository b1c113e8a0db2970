package arrange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
)

// ErrPitchName is returned for pitch strings that are neither a note number
// nor a recognizable note name.
var ErrPitchName = errors.New("unrecognized pitch")

// semitones of the natural notes within one octave.
var semitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// parsePitch resolves a note number ("60") or a scientific pitch name ("C4",
// "F#3", "Bb2") to its MIDI note. Middle C ("C4") is note 60.
func parsePitch(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty pitch", ErrPitchName)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > contracts.MaxPitch {
			return 0, fmt.Errorf("%w: %d", contracts.ErrPitchRange, n)
		}
		return uint8(n), nil
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	base, ok := semitones[letter]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPitchName, s)
	}

	rest := s[1:]
	accidental := 0
	for len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		if rest[0] == '#' {
			accidental++
		} else {
			accidental--
		}
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrPitchName, s)
	}

	midi := (octave+1)*12 + base + accidental
	if midi < 0 || midi > contracts.MaxPitch {
		return 0, fmt.Errorf("%w: %q resolves to %d", contracts.ErrPitchRange, s, midi)
	}
	return uint8(midi), nil
}
