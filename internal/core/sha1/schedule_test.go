package sha1

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = uint32(i)*0x01010101 + 0x9e3779b9
	}
	orig := b

	w := Expand(&b)

	assert.Equal(t, orig, b)
	assert.Equal(t, b[:], w[:16])
	for i := 16; i < Rounds; i++ {
		want := bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		assert.Equal(t, want, w[i], "word %d", i)
	}
}

func TestExpandZeroBlock(t *testing.T) {
	var b Block
	assert.Equal(t, Schedule{}, Expand(&b))
}
