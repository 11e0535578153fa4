// Package sha1 computes SHA-1 digests as defined in FIPS 180-1.
//
// SHA-1 is broken for collision resistance. Use it for fingerprints and
// compatibility with formats that require it.
package sha1

import (
	"encoding/binary"
	"encoding/hex"
)

const (
	// Size is the length of a digest in bytes.
	Size = 20
	// BlockSize is the length of one compression block in bytes.
	BlockSize = 64
	// Rounds is the number of compression rounds per block.
	Rounds = 80
)

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// State holds the five chaining registers h0..h4.
type State [5]uint32

// Block is one 64-byte window of the padded message as big-endian words.
type Block [16]uint32

// Schedule is the 80-word expansion of a Block.
type Schedule [Rounds]uint32

// Digest is a finished SHA-1 value.
type Digest [Size]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Init returns the initial chaining state.
func Init() State {
	return State{init0, init1, init2, init3, init4}
}

// Bytes returns the state serialized big-endian.
func (h *State) Bytes() Digest {
	var d Digest
	for i, v := range h {
		binary.BigEndian.PutUint32(d[i*4:], v)
	}
	return d
}

// Sum returns the SHA-1 digest of msg. msg is not modified and may be shared
// with other goroutines.
func Sum(msg []byte) (Digest, error) {
	return sum(msg, host)
}

func sum(msg []byte, a adapter) (Digest, error) {
	p, err := Pad(msg)
	if err != nil {
		return Digest{}, err
	}

	var blk Block
	h := Init()
	for len(p) >= BlockSize {
		a.Load(&blk, p[:BlockSize])
		w := Expand(&blk)
		Compress(&h, &w)
		p = p[BlockSize:]
	}
	return h.Bytes(), nil
}
