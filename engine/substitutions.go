package engine

import (
	"github.com/coregx/fuzzysearch/internal/conv"
	"github.com/coregx/fuzzysearch/internal/sparse"
	"github.com/coregx/fuzzysearch/match"
	"github.com/coregx/fuzzysearch/ngram"
	"github.com/coregx/fuzzysearch/seq"
)

// Substitutions implements component C5: search allowing only character
// substitutions (I = D = 0), so every candidate keeps the pattern's exact
// length and only its start position slides.
type Substitutions struct {
	K int

	// NgramAnchorThreshold is the minimum tiling quotient m/(K+1) at which
	// SearchRaw prefers the n-gram-anchored algorithm over the plain
	// sliding-window one. Defaults to 3 (spec.md's fixed threshold);
	// dispatch.SelectWithConfig can override it.
	NgramAnchorThreshold int
}

// NewSubstitutions returns the substitutions-only engine with at most k
// mismatches allowed.
func NewSubstitutions(k int) Substitutions { return Substitutions{K: k, NgramAnchorThreshold: 3} }

// SearchRaw finds every window of text the length of pattern whose Hamming
// distance to pattern is at most K. It dispatches to the n-gram-anchored
// algorithm (B) when the pattern and text are byte views and the tiling
// quotient q = m/(K+1) reaches NgramAnchorThreshold; otherwise it falls
// back to the plain sliding-window algorithm (A).
func (s Substitutions) SearchRaw(pattern, text seq.View) ([]match.Match, error) {
	m := pattern.Len()
	if pb, tb, ok := asBytes(pattern, text); ok && m/(s.K+1) >= s.NgramAnchorThreshold {
		return s.searchNgram(pb, tb)
	}
	return s.searchRingCounter(pattern, text)
}

// ExtraItems is m-1: a substitutions-only match never changes length, so a
// candidate window can start at most m-1 elements before a chunk boundary.
func (s Substitutions) ExtraItems(patternLen int) int { return patternLen - 1 }

// searchRingCounter is algorithm A, spec.md §4.5.A: for every text position
// i, an element equal to pattern[p] supports the alignment that would start
// at i-p, incrementing that alignment's running match count. Because an
// alignment starting at s is only live while i ranges over [s, s+m), and
// alignments m apart never overlap in time, a circular buffer of m counters
// indexed by start%m can track every live alignment at once: when i reaches
// s+m-1, cnt[s%m] holds the number of pattern positions matched, so
// m-cnt[s%m] is the Hamming distance, and the slot is then zeroed for reuse
// by the alignment starting at s+m.
//
// This is not a two-position rolling delta: sliding the window by one does
// not preserve any single aligned pair (pattern is re-aligned against the
// text at every start), so the count cannot be maintained by only
// subtracting the element leaving on the left and adding the one entering
// on the right.
func (s Substitutions) searchRingCounter(pattern, text seq.View) ([]match.Match, error) {
	m, n := pattern.Len(), text.Len()
	if m == 0 {
		return nil, seq.ErrEmptyPattern
	}
	if m > n {
		return nil, nil
	}

	positions := make(map[any][]int, m)
	for p := 0; p < m; p++ {
		e := at(pattern, p)
		positions[e] = append(positions[e], p)
	}

	cnt := make([]int, m)
	var out []match.Match
	emit := func(start, dist int) {
		if dist <= s.K {
			out = append(out, match.New(start, start+m, dist, text.Slice(start, start+m)))
		}
	}

	for i := 0; i < n; i++ {
		for _, p := range positions[at(text, i)] {
			start := i - p
			if start < 0 {
				continue
			}
			cnt[start%m]++
		}
		if i >= m-1 {
			start := i - m + 1
			slot := start % m
			emit(start, m-cnt[slot])
			cnt[slot] = 0
		}
	}
	return out, nil
}

// searchNgram is algorithm B: tile the pattern into K+1 grams, scan text
// for any verbatim occurrence of any gram, and for each anchor verify the
// full m-length window implied by that gram's offset. Because I = D = 0,
// an anchor at gram j fully determines the candidate window's start
// (anchorStart - grams[j].Offset); there is no left/right expansion to do,
// unlike the Levenshtein and generic n-gram variants.
func (s Substitutions) searchNgram(pattern, text []byte) ([]match.Match, error) {
	tiling, err := ngram.Tile(pattern, s.K)
	if err != nil {
		return s.searchRingCounter(seq.NewByteView(pattern), seq.NewByteView(text))
	}

	m, n := len(pattern), len(text)
	seen := sparse.NewSparseSet(conv.IntToUint32(n + 1))
	var out []match.Match

	for _, occ := range ngram.Scan(tiling, text) {
		start := occ.Start - tiling.Grams[occ.GramIdx].Offset
		if start < 0 || start+m > n {
			continue
		}
		startU := conv.IntToUint32(start)
		if seen.Contains(startU) {
			continue
		}
		seen.Insert(startU)

		dist := 0
		for i := 0; i < m; i++ {
			if pattern[i] != text[start+i] {
				dist++
				if dist > s.K {
					break
				}
			}
		}
		if dist <= s.K {
			out = append(out, match.New(start, start+m, dist, seq.NewByteView(text).Slice(start, start+m)))
		}
	}
	return out, nil
}

// asBytes reports whether both views are byte-backed, handing back their
// raw slices for the fast paths that need them.
func asBytes(a, b seq.View) ([]byte, []byte, bool) {
	ab, ok := a.Bytes()
	if !ok {
		return nil, nil, false
	}
	bb, ok := b.Bytes()
	if !ok {
		return nil, nil, false
	}
	return ab, bb, true
}
