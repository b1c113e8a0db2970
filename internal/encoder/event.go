package encoder

import (
	"fmt"
	"math"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
)

// Meta-event tags and tempo limits of the wire format.
const (
	statusMeta     = 0xFF
	metaTempo      = 0x51
	metaEndOfTrack = 0x2F

	microsecondsPerMinute = 60000000
	maxTempoMicros        = 0xFFFFFF // the tempo payload is three bytes
)

// microsecondsPerBeat converts beats per minute into the rounded
// microseconds-per-beat figure stored in the tempo meta-event. The caller
// checks the result against maxTempoMicros before narrowing it.
func microsecondsPerBeat(bpm float64) float64 {
	return math.Round(microsecondsPerMinute / bpm)
}

// appendTempoEvent appends the tick-zero tempo meta-event: delta 0, meta tag,
// tempo type, payload length, then three big-endian microsecond bytes.
func appendTempoEvent(dst []byte, microsPerBeat int64) []byte {
	dst = append(dst, 0x00, statusMeta, metaTempo, 0x03)
	return append(dst, byte(microsPerBeat>>16), byte(microsPerBeat>>8), byte(microsPerBeat))
}

// appendNoteEvent appends one delta-prefixed channel voice event. Releases
// are written as Note Off with velocity zero.
func appendNoteEvent(dst []byte, evt trackEvent) ([]byte, error) {
	dst, err := appendVLQ(dst, evt.delta)
	if err != nil {
		return nil, err
	}

	status := byte(contracts.NoteOn) | evt.channel
	velocity := evt.velocity
	if evt.kind == kindOff {
		status = byte(contracts.NoteOff) | evt.channel
		velocity = 0x00
	}
	return append(dst, status, evt.pitch, velocity), nil
}

// appendEndOfTrack appends the mandatory end marker at the final event's
// tick, so its delta is always zero.
func appendEndOfTrack(dst []byte) []byte {
	return append(dst, 0x00, statusMeta, metaEndOfTrack, 0x00)
}

// trackPayload renders a built track into raw event bytes: the tempo
// meta-event when microsPerBeat is set, every note event in order, then the
// end marker.
func trackPayload(events []trackEvent, microsPerBeat int64) ([]byte, error) {
	payload := make([]byte, 0, len(events)*4+11)
	if microsPerBeat > 0 {
		payload = appendTempoEvent(payload, microsPerBeat)
	}

	for i, evt := range events {
		var err error
		if payload, err = appendNoteEvent(payload, evt); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return appendEndOfTrack(payload), nil
}
