package engine

import (
	"github.com/coregx/fuzzysearch/match"
	"github.com/coregx/fuzzysearch/ngram"
	"github.com/coregx/fuzzysearch/params"
	"github.com/coregx/fuzzysearch/seq"
)

// Generic implements component C7: the four-parameter search, where
// substitutions, insertions and deletions each carry their own budget
// (S, I, D) in addition to the overall edit budget L.
type Generic struct {
	N params.Normalized

	// NgramAnchorThreshold is the minimum tiling quotient m/(L+1) at which
	// SearchRaw prefers the n-gram-anchored algorithm. Defaults to 3;
	// dispatch.SelectWithConfig can override it.
	NgramAnchorThreshold int
}

// NewGeneric returns the generic engine for a normalized parameter tuple.
func NewGeneric(n params.Normalized) Generic { return Generic{N: n, NgramAnchorThreshold: 3} }

// SearchRaw finds every substring of text reachable from pattern by at
// most N.S substitutions, N.I insertions and N.D deletions, totaling at
// most N.L edits. As with Levenshtein, it uses the n-gram-anchored
// algorithm (B) for byte views once m/(L+1) reaches NgramAnchorThreshold,
// falling back to the candidate-set algorithm (A) otherwise. Per spec.md
// §4.7, m/(L+1) must be at least 1 for the n-gram path to apply at all;
// below that it always falls back to A, which has no such restriction.
func (g Generic) SearchRaw(pattern, text seq.View) ([]match.Match, error) {
	m := pattern.Len()
	if m == 0 {
		return nil, seq.ErrEmptyPattern
	}
	if pb, tb, ok := asBytes(pattern, text); ok && m/(g.N.L+1) >= g.NgramAnchorThreshold {
		return g.searchNgram(pb, tb)
	}
	return g.searchCandidates(pattern, text)
}

// ExtraItems is m-1+L, the same reasoning as Levenshtein's but bounded by
// the overall edit budget L rather than a single-dimension K.
func (g Generic) ExtraItems(patternLen int) int { return patternLen - 1 + g.N.L }

type gCandidate struct{ start, p, s, ins, del int }

type gKey struct{ start, p, s, ins, del int }

func (c gCandidate) key() gKey { return gKey{c.start, c.p, c.s, c.ins, c.del} }
func (c gCandidate) total() int { return c.s + c.ins + c.del }

// searchCandidates is algorithm A, spec.md §4.7.A: the same seed/close/
// advance/close/emit loop as the Levenshtein engine, but tracking
// substitution, insertion and deletion counts independently so each can be
// capped on its own in addition to the overall total.
func (g Generic) searchCandidates(pattern, text seq.View) ([]match.Match, error) {
	m, n := pattern.Len(), text.Len()
	S, I, D, L := g.N.S, g.N.I, g.N.D, g.N.L
	cur := make(map[gKey]gCandidate)
	var out []match.Match

	emit := func(set map[gKey]gCandidate, end int) {
		for _, c := range set {
			if c.p == m {
				out = append(out, match.New(c.start, end, c.total(), text.Slice(c.start, end)))
			}
		}
	}

	for i := 0; i < n; i++ {
		seed := gCandidate{start: i}
		cur[seed.key()] = seed
		closeEpsilonG(cur, D, L, m)

		next := make(map[gKey]gCandidate, len(cur))
		add := func(c gCandidate) {
			if _, ok := next[c.key()]; !ok {
				next[c.key()] = c
			}
		}
		e := at(text, i)
		for _, c := range cur {
			if c.p < m && eq(at(pattern, c.p), e) {
				add(gCandidate{c.start, c.p + 1, c.s, c.ins, c.del})
			}
			if c.p < m && c.s < S && c.total() < L {
				add(gCandidate{c.start, c.p + 1, c.s + 1, c.ins, c.del})
			}
			if c.ins < I && c.total() < L {
				add(gCandidate{c.start, c.p, c.s, c.ins + 1, c.del})
			}
		}
		closeEpsilonG(next, D, L, m)
		emit(next, i+1)
		cur = next
	}

	for _, c := range cur {
		if c.p < m {
			need := m - c.p
			if c.del+need <= D && c.total()+need <= L {
				out = append(out, match.New(c.start, n, c.total()+need, text.Slice(c.start, n)))
			}
		}
	}
	return out, nil
}

func closeEpsilonG(set map[gKey]gCandidate, D, L, m int) {
	queue := make([]gCandidate, 0, len(set))
	for _, c := range set {
		queue = append(queue, c)
	}
	for len(queue) > 0 {
		c := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if c.p < m && c.del < D && c.total() < L {
			nc := gCandidate{c.start, c.p + 1, c.s, c.ins, c.del + 1}
			if _, ok := set[nc.key()]; !ok {
				set[nc.key()] = nc
				queue = append(queue, nc)
			}
		}
	}
}

// searchNgram is algorithm B, spec.md §4.7.B: tile by L, anchor on every
// verbatim gram occurrence, then verify/expand left and right with the
// same independent S/I/D/L budgets as algorithm A, applied to just the
// small window around the anchor instead of the whole text.
func (g Generic) searchNgram(pattern, text []byte) ([]match.Match, error) {
	tiling, err := ngram.Tile(pattern, g.N.L)
	if err != nil {
		return g.searchCandidates(seq.NewByteView(pattern), seq.NewByteView(text))
	}

	pv := seq.NewByteView(pattern)
	tv := seq.NewByteView(text)
	var out []match.Match

	for _, occ := range ngram.Scan(tiling, text) {
		gram := tiling.Grams[occ.GramIdx]
		lefts := expandGenericLeft(pv, tv, gram.Offset, occ.Start, g.N)
		rights := expandGenericRight(pv, tv, gram.Offset+len(gram.Bytes), occ.End, g.N)
		for _, lf := range lefts {
			for _, rt := range rights {
				s := lf.s + rt.s
				ins := lf.ins + rt.ins
				del := lf.del + rt.del
				if s <= g.N.S && ins <= g.N.I && del <= g.N.D && s+ins+del <= g.N.L {
					out = append(out, match.New(lf.pos, rt.pos, s+ins+del, tv.Slice(lf.pos, rt.pos)))
				}
			}
		}
	}
	return out, nil
}
