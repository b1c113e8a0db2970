package encoder

import (
	"fmt"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
)

// maxVLQ is the largest value the format's four-byte variable-length
// quantity can carry.
const maxVLQ = 1<<28 - 1

// appendVLQ appends the variable-length encoding of v to dst: 7-bit groups,
// most significant first, continuation bit set on every byte but the last.
// Zero encodes as a single zero byte.
func appendVLQ(dst []byte, v int64) ([]byte, error) {
	if v < 0 || v > maxVLQ {
		return nil, fmt.Errorf("%w: %d", contracts.ErrVLQOverflow, v)
	}

	var buf [4]byte
	i := len(buf) - 1
	buf[i] = byte(v & 0x7F)
	for v >>= 7; v > 0; v >>= 7 {
		i--
		buf[i] = byte(v&0x7F) | 0x80
	}
	return append(dst, buf[i:]...), nil
}

// decodeVLQ reads one variable-length quantity from the front of data and
// returns the value with the number of bytes consumed. The production path
// is write-only; decoding exists as the exact inverse for round-trip checks.
func decodeVLQ(data []byte) (int64, int, error) {
	var v int64
	for i, b := range data {
		if i == 4 {
			return 0, 0, fmt.Errorf("%w: quantity longer than four bytes", contracts.ErrVLQOverflow)
		}
		v = v<<7 | int64(b&0x7F)
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, contracts.ErrVLQTruncated
}
