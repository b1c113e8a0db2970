package encoder

import (
	"fmt"
	"sort"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
)

type eventKind uint8

const (
	kindOff eventKind = iota
	kindOn
)

// subEvent is one half of a note, the attack or the release, pinned to an
// absolute tick. Sub-events exist only while a track is being built.
type subEvent struct {
	tick     int64
	kind     eventKind
	channel  uint8
	pitch    uint8
	velocity uint8
}

// trackEvent is a sub-event carrying its final delta-time, ready for
// serialization.
type trackEvent struct {
	delta    int64
	kind     eventKind
	channel  uint8
	pitch    uint8
	velocity uint8
}

// buildTrack validates one track's notes and expands them into an ordered,
// delta-encoded event stream. It is a pure function of its input.
func buildTrack(notes []contracts.NoteEvent, ticksPerBeat uint16) ([]trackEvent, error) {
	subs := make([]subEvent, 0, len(notes)*2)
	for i, note := range notes {
		if err := note.Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		start, duration, err := noteTicks(note, ticksPerBeat)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		subs = append(subs,
			subEvent{tick: start, kind: kindOn, channel: note.Channel, pitch: note.Pitch, velocity: note.Velocity},
			subEvent{tick: start + duration, kind: kindOff, channel: note.Channel, pitch: note.Pitch},
		)
	}

	orderSubEvents(subs)
	return deltaEncode(subs)
}

// orderSubEvents sorts sub-events by tick ascending, then reorders each
// equal-tick run so that releases precede attacks for the same
// (channel, pitch) pair. Events of unrelated pairs keep insertion order,
// which is why the sort itself compares nothing but ticks.
func orderSubEvents(subs []subEvent) {
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].tick < subs[j].tick
	})

	for lo := 0; lo < len(subs); {
		hi := lo + 1
		for hi < len(subs) && subs[hi].tick == subs[lo].tick {
			hi++
		}
		if hi-lo > 1 {
			releaseBeforeAttack(subs[lo:hi])
		}
		lo = hi
	}
}

// releaseBeforeAttack rewrites one equal-tick run so every (channel, pitch)
// pair has its off events in the pair's earliest slots. A note that ends
// exactly where another of the same pitch begins must release first, or the
// pitch would appear to overlap itself. Slots held by other pairs are left
// untouched.
func releaseBeforeAttack(run []subEvent) {
	type pairKey struct {
		channel uint8
		pitch   uint8
	}

	slots := make(map[pairKey][]int, len(run))
	for i := range run {
		k := pairKey{run[i].channel, run[i].pitch}
		slots[k] = append(slots[k], i)
	}

	for _, idx := range slots {
		if len(idx) < 2 {
			continue
		}
		ordered := make([]subEvent, 0, len(idx))
		for _, i := range idx {
			if run[i].kind == kindOff {
				ordered = append(ordered, run[i])
			}
		}
		for _, i := range idx {
			if run[i].kind == kindOn {
				ordered = append(ordered, run[i])
			}
		}
		for n, i := range idx {
			run[i] = ordered[n]
		}
	}
}

// deltaEncode converts absolute ticks into inter-event deltas. After sorting,
// a negative delta can only come from a defect in the ordering step, so it
// aborts rather than emitting a corrupt stream.
func deltaEncode(subs []subEvent) ([]trackEvent, error) {
	events := make([]trackEvent, len(subs))
	prev := int64(0)
	for i, sub := range subs {
		delta := sub.tick - prev
		if delta < 0 {
			return nil, fmt.Errorf("%w: negative delta %d at event %d", contracts.ErrInternalInconsistency, delta, i)
		}
		events[i] = trackEvent{
			delta:    delta,
			kind:     sub.kind,
			channel:  sub.channel,
			pitch:    sub.pitch,
			velocity: sub.velocity,
		}
		prev = sub.tick
	}
	return events, nil
}
