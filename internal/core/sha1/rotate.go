package sha1

import "math/bits"

func rotl(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, n)
}
