package sha1

import (
	"encoding/binary"
	stderrors "errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/gosha1/errors"
)

func TestPad(t *testing.T) {
	tests := []struct {
		length   int
		expected int
	}{
		{0, 64},
		{1, 64},
		{3, 64},
		{55, 64},
		{56, 128},
		{63, 128},
		{64, 128},
		{119, 128},
		{120, 192},
		{1000, 1024},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.length), func(t *testing.T) {
			msg := make([]byte, tt.length)
			for i := range msg {
				msg[i] = 0xff
			}

			p, err := Pad(msg)
			require.NoError(t, err)
			require.Len(t, p, tt.expected)

			assert.Equal(t, msg, p[:tt.length])
			assert.Equal(t, byte(0x80), p[tt.length])
			for i := tt.length + 1; i < len(p)-8; i++ {
				assert.Zero(t, p[i], "byte %d", i)
			}
			assert.Equal(t, uint64(tt.length)*8, binary.BigEndian.Uint64(p[len(p)-8:]))
		})
	}
}

func TestPaddedLenInvariant(t *testing.T) {
	for n := uint64(0); n < 512; n++ {
		total, err := PaddedLen(n)
		require.NoError(t, err)
		assert.Zero(t, total%BlockSize, "n=%d", n)
		assert.GreaterOrEqual(t, total, n+9, "n=%d", n)
		assert.Less(t, total, n+9+BlockSize, "n=%d", n)
	}
}

func TestPaddedLenTooLarge(t *testing.T) {
	for _, n := range []uint64{MaxMessageLen + 1, math.MaxUint64} {
		_, err := PaddedLen(n)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrInputTooLarge))

		var he *errors.HashError
		require.True(t, stderrors.As(err, &he))
		assert.Equal(t, "pad", he.Op)
	}
}
