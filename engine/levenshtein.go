package engine

import (
	"github.com/coregx/fuzzysearch/match"
	"github.com/coregx/fuzzysearch/ngram"
	"github.com/coregx/fuzzysearch/seq"
)

// Levenshtein implements component C6: full edit-distance search, where
// substitutions, insertions and deletions all count equally toward a
// single budget K.
type Levenshtein struct {
	K int

	// NgramAnchorThreshold is the minimum tiling quotient m/(K+1) at which
	// SearchRaw prefers the n-gram-anchored algorithm. Defaults to 3;
	// dispatch.SelectWithConfig can override it.
	NgramAnchorThreshold int
}

// NewLevenshtein returns the Levenshtein engine with edit-distance budget k.
func NewLevenshtein(k int) Levenshtein { return Levenshtein{K: k, NgramAnchorThreshold: 3} }

// SearchRaw finds every substring of text within edit distance K of
// pattern. It uses the n-gram-anchored algorithm (B) when the views are
// byte-backed and the tiling quotient q = m/(K+1) reaches
// NgramAnchorThreshold, falling back to the candidate-set algorithm (A)
// otherwise.
func (l Levenshtein) SearchRaw(pattern, text seq.View) ([]match.Match, error) {
	m := pattern.Len()
	if m == 0 {
		return nil, seq.ErrEmptyPattern
	}
	if pb, tb, ok := asBytes(pattern, text); ok && m/(l.K+1) >= l.NgramAnchorThreshold {
		return l.searchNgram(pb, tb)
	}
	return l.searchCandidates(pattern, text)
}

// ExtraItems is m-1+K: an edit-distance match can both start up to K
// elements earlier than an exact match would (from accumulated insertions)
// and run up to K elements longer; the chunked streamer retains these
// m-1+K elements of overlap on top of the exact-match baseline of m-1.
func (l Levenshtein) ExtraItems(patternLen int) int { return patternLen - 1 + l.K }

// lCandidate is one live alignment thread: it began at text index start,
// has matched the first p pattern elements, at a cost of d edits so far.
type lCandidate struct{ start, p, d int }

type lKey struct{ start, p, d int }

func (c lCandidate) key() lKey { return lKey{c.start, c.p, c.d} }

// searchCandidates is algorithm A, spec.md §4.6.A: at every text position,
// seed a fresh candidate, close the live set under pattern-only deletions,
// consume the text element via match/substitute/insert transitions, close
// again, and emit every candidate that has reached the end of pattern.
//
// The table in spec.md additionally lists a "delete a run of k pattern
// characters then match" transition; that is exactly what repeated
// single-character pattern deletions (the epsilon-closure below) compose
// into once followed by an ordinary match, so it is not implemented as a
// separate case.
func (l Levenshtein) searchCandidates(pattern, text seq.View) ([]match.Match, error) {
	m, n := pattern.Len(), text.Len()
	cur := make(map[lKey]lCandidate)
	var out []match.Match

	emit := func(set map[lKey]lCandidate, end int) {
		for _, c := range set {
			if c.p == m {
				out = append(out, match.New(c.start, end, c.d, text.Slice(c.start, end)))
			}
		}
	}

	for i := 0; i < n; i++ {
		seed := lCandidate{start: i, p: 0, d: 0}
		cur[seed.key()] = seed
		closeEpsilonL(cur, l.K, m)

		next := make(map[lKey]lCandidate, len(cur))
		add := func(c lCandidate) {
			if _, ok := next[c.key()]; !ok {
				next[c.key()] = c
			}
		}
		e := at(text, i)
		for _, c := range cur {
			if c.p < m && eq(at(pattern, c.p), e) {
				add(lCandidate{c.start, c.p + 1, c.d})
			}
			if c.p < m && c.d < l.K {
				add(lCandidate{c.start, c.p + 1, c.d + 1})
			}
			if c.d < l.K {
				add(lCandidate{c.start, c.p, c.d + 1})
			}
		}
		closeEpsilonL(next, l.K, m)
		emit(next, i+1)
		cur = next
	}

	for _, c := range cur {
		if c.p < m && c.d+(m-c.p) <= l.K {
			out = append(out, match.New(c.start, n, c.d+(m-c.p), text.Slice(c.start, n)))
		}
	}
	return out, nil
}

// closeEpsilonL extends set to a fixpoint under the pattern-only deletion
// transition (p, d) -> (p+1, d+1), which does not consume a text element.
func closeEpsilonL(set map[lKey]lCandidate, K, m int) {
	queue := make([]lCandidate, 0, len(set))
	for _, c := range set {
		queue = append(queue, c)
	}
	for len(queue) > 0 {
		c := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if c.p < m && c.d < K {
			nc := lCandidate{c.start, c.p + 1, c.d + 1}
			if _, ok := set[nc.key()]; !ok {
				set[nc.key()] = nc
				queue = append(queue, nc)
			}
		}
	}
}

// searchNgram is algorithm B, spec.md §4.6.B: tile the pattern into K+1
// grams, anchor on every verbatim gram occurrence, then expand left and
// right from the anchor within the remaining edit-distance budget.
func (l Levenshtein) searchNgram(pattern, text []byte) ([]match.Match, error) {
	tiling, err := ngram.Tile(pattern, l.K)
	if err != nil {
		return l.searchCandidates(seq.NewByteView(pattern), seq.NewByteView(text))
	}

	pv := seq.NewByteView(pattern)
	tv := seq.NewByteView(text)
	var out []match.Match

	for _, occ := range ngram.Scan(tiling, text) {
		gram := tiling.Grams[occ.GramIdx]
		lefts := expandLeft(pv, tv, gram.Offset, occ.Start, l.K)
		rights := expandRight(pv, tv, gram.Offset+len(gram.Bytes), occ.End, l.K)
		for _, lf := range lefts {
			for _, rt := range rights {
				d := lf.dist + rt.dist
				if d <= l.K {
					out = append(out, match.New(lf.pos, rt.pos, d, tv.Slice(lf.pos, rt.pos)))
				}
			}
		}
	}
	return out, nil
}
