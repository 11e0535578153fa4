package sha1

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/unkn0wn-root/gosha1/errors"
)

// MaxMessageLen is the largest message, in bytes, whose bit length still fits
// the 64-bit length field.
const MaxMessageLen uint64 = math.MaxUint64 / 8

// lenField is the size of the trailing big-endian bit-length field.
const lenField = 8

// PaddedLen returns the length of the padded form of an n-byte message.
func PaddedLen(n uint64) (uint64, error) {
	if n > MaxMessageLen {
		return 0, errors.NewHashError("pad", fmt.Errorf("%d bytes: %w", n, errors.ErrInputTooLarge))
	}
	// 0x80 marker plus length field, rounded up to a whole block
	total := (n/BlockSize + 1) * BlockSize
	if n%BlockSize >= BlockSize-lenField {
		total += BlockSize
	}
	if total > math.MaxInt {
		return 0, errors.NewHashError("pad", fmt.Errorf("%d bytes: %w", n, errors.ErrInputTooLarge))
	}
	return total, nil
}

// Pad returns a fresh copy of msg with the SHA-1 padding appended. msg is only
// read.
func Pad(msg []byte) ([]byte, error) {
	n := uint64(len(msg))
	total, err := PaddedLen(n)
	if err != nil {
		return nil, err
	}

	p := make([]byte, total)
	copy(p, msg)
	p[n] = 0x80
	binary.BigEndian.PutUint64(p[total-lenField:], n<<3)
	return p, nil
}
