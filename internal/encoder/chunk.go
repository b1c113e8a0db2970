package encoder

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
)

// Chunk framing constants of the container format.
var (
	headerTag = [4]byte{'M', 'T', 'h', 'd'}
	trackTag  = [4]byte{'M', 'T', 'r', 'k'}
)

const (
	headerLength  = 6
	formatVersion = 1
)

// appendTrackChunk frames one track's event bytes: tag, big-endian payload
// length, payload. The length field always equals the exact payload size.
func appendTrackChunk(dst, payload []byte) ([]byte, error) {
	if int64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", contracts.ErrChunkOverflow, len(payload))
	}
	dst = append(dst, trackTag[:]...)
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(payload)))
	return append(dst, payload...), nil
}

// appendFileHeader frames the header chunk. trackCount is fixed by the caller
// only after every track chunk has serialized, so it always matches the
// chunks that follow.
func appendFileHeader(dst []byte, trackCount int, ticksPerBeat uint16) ([]byte, error) {
	if trackCount > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d", contracts.ErrTrackCountRange, trackCount)
	}
	dst = append(dst, headerTag[:]...)
	dst = binary.BigEndian.AppendUint32(dst, headerLength)
	dst = binary.BigEndian.AppendUint16(dst, formatVersion)
	dst = binary.BigEndian.AppendUint16(dst, uint16(trackCount))
	return binary.BigEndian.AppendUint16(dst, ticksPerBeat), nil
}
