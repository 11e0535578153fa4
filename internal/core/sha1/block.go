package sha1

var _K = [4]uint32{0x5A827999, 0x6ED9EBA1, 0x8F1BBCDC, 0xCA62C1D6}

// f is the round function for round i. The first and third quarters use the
// reduced forms of Ch and Maj.
func f(i int, b, c, d uint32) uint32 {
	switch {
	case i < 20:
		return d ^ (b & (c ^ d))
	case i < 40:
		return b ^ c ^ d
	case i < 60:
		return (b & c) | (d & (b | c))
	default:
		return b ^ c ^ d
	}
}

// Compress runs the 80 rounds over w and folds the result into h.
func Compress(h *State, w *Schedule) {
	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
	for i := 0; i < Rounds; i++ {
		t := rotl(a, 5) + e + f(i, b, c, d) + _K[i/20] + w[i]
		a, b, c, d, e = t, a, rotl(b, 30), c, d
	}
	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
}
