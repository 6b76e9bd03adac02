// Package ngram provides the q-gram tiling acceleration shared by the
// n-gram-anchored algorithms of components C5, C6 and C7 (spec.md §4.5-4.7,
// variant "B"): tile the pattern into disjoint, fixed-length grams by the
// pigeonhole principle, scan the text for any occurrence of any gram using
// the fastest available multi-literal scanner, then hand each anchor back
// to the caller for verification/expansion.
//
// This acceleration only applies to byte-backed patterns: it is built on
// top of the literal/prefilter/ahocorasick machinery coregex uses for its
// own literal-prefix scanning, none of which generalizes past []byte. The
// n-gram-anchored engines fall back to their plain candidate-set algorithm
// for non-byte seq.View implementations.
package ngram

import "errors"

// ErrSubseqTooShort is returned by Tile when the pattern is too short
// relative to the error budget to tile even one non-empty gram
// (q = len(pattern)/(bound+1) < 1).
var ErrSubseqTooShort = errors.New("fuzzysearch: pattern too short for n-gram-anchored search")

// Gram is one tile of the pattern: its byte content and the offset at
// which it begins in the original pattern.
type Gram struct {
	Bytes  []byte
	Offset int
}

// Tiling is the result of splitting a pattern into bound+1 disjoint grams
// of length q = len(pattern)/(bound+1), per spec.md's pigeonhole
// construction. The last gram absorbs any remainder so the grams cover the
// pattern exactly.
type Tiling struct {
	Pattern []byte
	Bound   int
	Q       int
	Grams   []Gram
}

// Tile splits pattern into bound+1 disjoint grams. bound is K for the
// Levenshtein engine or L for the generic engine (the substitutions-only
// engine tiles by its own K the same way, since I=D=0 there keeps
// alignment fixed).
func Tile(pattern []byte, bound int) (Tiling, error) {
	m := len(pattern)
	q := m / (bound + 1)
	if q < 1 {
		return Tiling{}, ErrSubseqTooShort
	}

	grams := make([]Gram, bound+1)
	for j := 0; j <= bound; j++ {
		start := j * q
		end := start + q
		if j == bound {
			end = m
		}
		grams[j] = Gram{Bytes: pattern[start:end], Offset: start}
	}
	return Tiling{Pattern: pattern, Bound: bound, Q: q, Grams: grams}, nil
}
