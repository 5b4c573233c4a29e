package rank

// Hash is the stable text hash the historical UI used as a deterministic
// stand-in for randomness. It must keep producing the same values, so the
// accumulator is an explicit int32: the algorithm is defined in terms of
// 32-bit two's-complement wraparound over the code points of the input.
func Hash(text string) int {
	var h int32
	for _, r := range text {
		h = (h*31 - h) + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}

// BoundedHash maps text into [min, max). Callers guarantee max > min.
func BoundedHash(text string, min, max int) int {
	return min + Hash(text)%(max-min)
}
