package groove

import (
	"fmt"
	"math/rand"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
)

// Timeline geometry: four beats to the bar, sixteen pattern steps.
const (
	beatsPerBar = 4.0
	stepBeats   = 0.25
)

// Velocity anchors for generated hits.
const (
	accentVelocity uint8 = 112
	normalVelocity uint8 = 88
	ghostVelocity  uint8 = 48
	chordVelocity  uint8 = 64
)

// Generator produces note timelines in one of the built-in styles. All
// variation comes from an explicit seeded source, so equal seeds reproduce
// identical timelines.
type Generator struct {
	style Style
	def   styleDef
	rng   *rand.Rand
}

// NewGenerator returns a generator for the named style.
func NewGenerator(style Style, seed int64) (*Generator, error) {
	def, ok := styles[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return &Generator{style: style, def: def, rng: rand.New(rand.NewSource(seed))}, nil
}

// BPM returns the style's default tempo.
func (g *Generator) BPM() float64 {
	return g.def.bpm
}

// Tracks renders the given number of bars as three parallel timelines:
// drums, bass and chords, in that order.
func (g *Generator) Tracks(bars int) ([][]contracts.NoteEvent, error) {
	if bars < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBarRange, bars)
	}

	drums, err := g.drumTrack(bars)
	if err != nil {
		return nil, fmt.Errorf("drum track: %w", err)
	}
	bass, err := g.bassTrack(bars)
	if err != nil {
		return nil, fmt.Errorf("bass track: %w", err)
	}
	chords, err := g.chordTrack(bars)
	if err != nil {
		return nil, fmt.Errorf("chord track: %w", err)
	}
	return [][]contracts.NoteEvent{drums, bass, chords}, nil
}

// drumTrack lays every drum line's pattern across the bars. Open hats ring
// for two steps; trap-style hat rolls squeeze a ghost hit between steps.
func (g *Generator) drumTrack(bars int) ([]contracts.NoteEvent, error) {
	var notes []contracts.NoteEvent
	for bar := 0; bar < bars; bar++ {
		barStart := float64(bar) * beatsPerBar
		for _, line := range g.def.drums {
			for step, hit := range line.pat {
				if hit != 'X' && hit != 'x' {
					continue
				}
				start := barStart + float64(step)*stepBeats
				length := stepBeats
				if line.note == drumOpenHat {
					length = 2 * stepBeats
				}
				n, err := contracts.NewNoteEvent(line.note, g.jitter(hitVelocity(hit)), drumChannel, start, length)
				if err != nil {
					return nil, err
				}
				notes = append(notes, n)

				if g.def.hatRolls && line.note == drumClosedHat && g.rng.Intn(8) == 0 {
					ghost, err := contracts.NewNoteEvent(line.note, ghostVelocity, drumChannel, start+stepBeats/2, stepBeats/2)
					if err != nil {
						return nil, err
					}
					notes = append(notes, ghost)
				}
			}
		}
	}
	return notes, nil
}

// bassTrack follows the chord progression's root notes through the bass
// pattern.
func (g *Generator) bassTrack(bars int) ([]contracts.NoteEvent, error) {
	var notes []contracts.NoteEvent
	for bar := 0; bar < bars; bar++ {
		barStart := float64(bar) * beatsPerBar
		chord := g.def.progression[bar%len(g.def.progression)]
		pitch := uint8(int(g.def.bassRoot) + chord.offset)
		for step, hit := range g.def.bass {
			if hit != 'X' && hit != 'x' {
				continue
			}
			start := barStart + float64(step)*stepBeats
			n, err := contracts.NewNoteEvent(pitch, g.jitter(hitVelocity(hit)), bassChannel, start, g.def.bassLen)
			if err != nil {
				return nil, err
			}
			notes = append(notes, n)
		}
	}
	return notes, nil
}

// chordTrack sustains one triad per bar, voiced root-third-fifth from the
// progression step.
func (g *Generator) chordTrack(bars int) ([]contracts.NoteEvent, error) {
	var notes []contracts.NoteEvent
	for bar := 0; bar < bars; bar++ {
		barStart := float64(bar) * beatsPerBar
		chord := g.def.progression[bar%len(g.def.progression)]
		root := int(g.def.chordRoot) + chord.offset
		third := root + 3
		if chord.major {
			third = root + 4
		}
		for _, pitch := range []int{root, third, root + 7} {
			n, err := contracts.NewNoteEvent(uint8(pitch), g.jitter(chordVelocity), chordChannel, barStart, beatsPerBar)
			if err != nil {
				return nil, err
			}
			notes = append(notes, n)
		}
	}
	return notes, nil
}

// jitter nudges a velocity by up to four steps either way.
func (g *Generator) jitter(base uint8) uint8 {
	return uint8(int(base) + g.rng.Intn(9) - 4)
}

// hitVelocity maps a pattern byte to its velocity anchor.
func hitVelocity(hit rune) uint8 {
	if hit == 'X' {
		return accentVelocity
	}
	return normalVelocity
}
