package groove

import (
	"errors"
	"sort"
)

// Style selects one of the built-in rhythm vocabularies.
type Style string

const (
	House  Style = "house"
	Techno Style = "techno"
	HipHop Style = "hiphop"
	Trap   Style = "trap"
)

// Errors reported for unusable generator parameters.
var (
	ErrUnknownStyle = errors.New("unknown style")
	ErrBarRange     = errors.New("bar count must be positive")
)

// General MIDI percussion notes used by the drum patterns.
const (
	drumKick      uint8 = 36
	drumRim       uint8 = 37
	drumSnare     uint8 = 38
	drumClap      uint8 = 39
	drumClosedHat uint8 = 42
	drumOpenHat   uint8 = 46
)

// Channels assigned to the generated tracks. Percussion sits on the
// format's dedicated drum channel.
const (
	bassChannel  uint8 = 0
	chordChannel uint8 = 1
	drumChannel  uint8 = 9
)

// pattern is a 16-step bar: 'X' is an accented hit, 'x' a normal hit, and
// any other byte a rest.
type pattern string

// drumLine pairs a percussion note with its 16-step pattern.
type drumLine struct {
	note uint8
	pat  pattern
}

// chordStep is one bar of the harmonic progression: a semitone offset from
// the style root and the triad quality built on it.
type chordStep struct {
	offset int
	major  bool
}

// styleDef is the complete vocabulary of one style: tempo, drum patterns,
// a bass line and a chord progression.
type styleDef struct {
	bpm         float64
	drums       []drumLine
	bass        pattern
	bassRoot    uint8   // MIDI note the bass line is built from
	bassLen     float64 // bass note length in beats
	chordRoot   uint8   // MIDI note the progression is built from
	progression []chordStep
	hatRolls    bool // sprinkle 32nd-note hat ghosts between steps
}

var styles = map[Style]styleDef{
	House: {
		bpm: 124,
		drums: []drumLine{
			{drumKick, "X---X---X---X---"},
			{drumClap, "----X-------X---"},
			{drumClosedHat, "x-x-x-x-x-x-x---"},
			{drumOpenHat, "--------------X-"},
		},
		bass:      "--x---x---x---x-",
		bassRoot:  33, // A1
		bassLen:   0.5,
		chordRoot: 57, // A3
		progression: []chordStep{
			{0, false}, {8, true}, {3, true}, {10, true}, // Am F C G
		},
	},
	Techno: {
		bpm: 132,
		drums: []drumLine{
			{drumKick, "X---X---X---X---"},
			{drumRim, "------X-------X-"},
			{drumClosedHat, "xx-xxx-xxx-xxx-x"},
			{drumOpenHat, "--X---X---X---X-"},
		},
		bass:      "x-x-x-x-x-x-x-x-",
		bassRoot:  29, // F1
		bassLen:   0.25,
		chordRoot: 53, // F3
		progression: []chordStep{
			{0, false}, {0, false}, {10, true}, {8, true}, // Fm Fm Eb Db
		},
	},
	HipHop: {
		bpm: 90,
		drums: []drumLine{
			{drumKick, "X------X--X-----"},
			{drumSnare, "----X-------X---"},
			{drumClosedHat, "x-x-x-x-x-x-x-x-"},
		},
		bass:      "X------X--X-----",
		bassRoot:  36, // C2
		bassLen:   0.75,
		chordRoot: 48, // C3
		progression: []chordStep{
			{0, false}, {10, true}, {8, true}, {5, false}, // Cm Bb Ab Fm
		},
	},
	Trap: {
		bpm: 140,
		drums: []drumLine{
			{drumKick, "X-----X----X----"},
			{drumSnare, "--------X-------"},
			{drumClosedHat, "xxxxxxxxxx-xxxxx"},
			{drumOpenHat, "----------X-----"},
		},
		bass:      "X-----X----X----",
		bassRoot:  25, // C#1
		bassLen:   1.5,
		chordRoot: 49, // C#3
		progression: []chordStep{
			{0, false}, {8, true}, {3, true}, {10, true}, // C#m A E B
		},
		hatRolls: true,
	},
}

// Styles lists the built-in style names in a stable order.
func Styles() []string {
	names := make([]string, 0, len(styles))
	for s := range styles {
		names = append(names, string(s))
	}
	sort.Strings(names)
	return names
}
