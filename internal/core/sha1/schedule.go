package sha1

// Expand extends the 16 words of b to the 80-word message schedule.
func Expand(b *Block) Schedule {
	var w Schedule
	copy(w[:16], b[:])
	for i := 16; i < Rounds; i++ {
		w[i] = rotl(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}
	return w
}
