package sha1

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// adapter turns 4-byte groups of a block into big-endian words. Words are
// loaded in the given order and swapped when that order is not big-endian.
type adapter struct {
	order binary.ByteOrder
	swap  bool
}

// host is decided once from the build target and never changes.
var host = adapter{order: binary.NativeEndian, swap: !cpu.IsBigEndian}

func swap32(x uint32) uint32 {
	return bits.ReverseBytes32(x)
}

// word returns the big-endian word stored at p[0:4].
func (a adapter) word(p []byte) uint32 {
	w := a.order.Uint32(p)
	if a.swap {
		w = swap32(w)
	}
	return w
}

// Load reads one 64-byte window of p into b.
func (a adapter) Load(b *Block, p []byte) {
	_ = p[BlockSize-1]
	for i := range b {
		b[i] = a.word(p[i*4:])
	}
}
