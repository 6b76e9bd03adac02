package prefilter

// findSIMD performs candidate search using the pure Go scalar implementation.
//
// coregex's Teddy ships SSSE3/AVX2 assembly kernels on amd64; this module
// keeps only the portable scalar path, since the retrieval pack carries no
// assembly sources to adapt. Functionally identical, just slower.
//
// Returns (position, bucketMask) or (-1, 0) if no candidate found.
// bucketMask contains bits for ALL matching buckets (not just first).
func (t *Teddy) findSIMD(haystack []byte) (pos int, bucketMask uint8) {
	// No SIMD available on this platform, use scalar fallback
	return t.findScalarCandidate(haystack)
}
