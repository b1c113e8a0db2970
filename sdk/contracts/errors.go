package contracts

import "errors"

// Validation errors reported when a note event carries out-of-range
// parameters. They surface eagerly, before any encoding starts.
var (
	ErrPitchRange          = errors.New("pitch outside the 0-127 range")
	ErrVelocityRange       = errors.New("velocity outside the 0-127 range")
	ErrChannelRange        = errors.New("channel outside the 0-15 range")
	ErrStartNegative       = errors.New("start time must not be negative")
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrZeroTickDuration    = errors.New("duration quantizes to zero ticks")
)

// Configuration errors reported when writer options fall outside what the
// file header or the tempo meta-event can represent.
var (
	ErrTicksPerBeatRange = errors.New("ticks per beat outside the 1-32767 range")
	ErrTempoRange        = errors.New("tempo outside the representable range")
)

// Encoding errors. The overflow errors mean the input does not fit the wire
// format; ErrInternalInconsistency signals an encoder defect, never bad
// input.
var (
	ErrVLQOverflow           = errors.New("value outside the variable-length quantity range")
	ErrVLQTruncated          = errors.New("truncated variable-length quantity")
	ErrChunkOverflow         = errors.New("chunk larger than its 32-bit length field allows")
	ErrTrackCountRange       = errors.New("track count exceeds the 16-bit header field")
	ErrInternalInconsistency = errors.New("internal consistency fault")
)
