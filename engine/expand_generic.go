package engine

import (
	"github.com/coregx/fuzzysearch/params"
	"github.com/coregx/fuzzysearch/seq"
)

// gEdge is one viable way to extend a generic-engine n-gram anchor,
// reaching text offset pos having spent s substitutions, ins insertions
// and del deletions.
type gEdge struct{ pos, s, ins, del int }

// expandGenericRight finds every way to align pattern[pStart:] against a
// prefix of text[tStart:] within the independent S/I/D/L budgets, mirroring
// expandRight but tracking edit types separately instead of a single
// count, since the generic engine's caps are not interchangeable.
func expandGenericRight(pattern, text seq.View, pStart, tStart int, n params.Normalized) []gEdge {
	plen := pattern.Len() - pStart
	wlen := window(plen, n.L, text.Len()-tStart)
	return simulateGeneric(
		func(i int) any { return at(pattern, pStart+i) }, plen,
		func(j int) any { return at(text, tStart+j) }, wlen,
		n, func(j int) int { return tStart + j },
	)
}

// expandGenericLeft is expandGenericRight's mirror, scanning pattern[:pEnd]
// and text[:tEnd] back to front.
func expandGenericLeft(pattern, text seq.View, pEnd, tEnd int, n params.Normalized) []gEdge {
	plen := pEnd
	wlen := window(plen, n.L, tEnd)
	return simulateGeneric(
		func(i int) any { return at(pattern, pEnd-1-i) }, plen,
		func(j int) any { return at(text, tEnd-1-j) }, wlen,
		n, func(j int) int { return tEnd - j },
	)
}

// simulateGeneric runs the same seed/close/advance/close loop as
// Generic.searchCandidates, but seeded once at the window's start instead
// of reseeded at every position, since it is verifying a single extension
// rather than scanning for fresh occurrences. pAt/tAt address the window
// in the direction of extension; toPos converts a consumed length back to
// an absolute text offset for the caller.
func simulateGeneric(pAt func(int) any, plen int, tAt func(int) any, wlen int, n params.Normalized, toPos func(int) int) []gEdge {
	type state struct{ p, s, ins, del int }
	cur := map[state]struct{}{{0, 0, 0, 0}: {}}
	closeEps := func(set map[state]struct{}) {
		queue := make([]state, 0, len(set))
		for st := range set {
			queue = append(queue, st)
		}
		for len(queue) > 0 {
			st := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			if st.p < plen && st.del < n.D && st.s+st.ins+st.del < n.L {
				nst := state{st.p + 1, st.s, st.ins, st.del + 1}
				if _, ok := set[nst]; !ok {
					set[nst] = struct{}{}
					queue = append(queue, nst)
				}
			}
		}
	}

	var out []gEdge
	collect := func(set map[state]struct{}, pos int) {
		for st := range set {
			if st.p == plen {
				out = append(out, gEdge{pos: pos, s: st.s, ins: st.ins, del: st.del})
			}
		}
	}

	closeEps(cur)
	collect(cur, toPos(0))

	for j := 0; j < wlen; j++ {
		e := tAt(j)
		next := make(map[state]struct{}, len(cur))
		add := func(st state) {
			if _, ok := next[st]; !ok {
				next[st] = struct{}{}
			}
		}
		for st := range cur {
			if st.p < plen && eq(pAt(st.p), e) {
				add(state{st.p + 1, st.s, st.ins, st.del})
			}
			if st.p < plen && st.s < n.S && st.s+st.ins+st.del < n.L {
				add(state{st.p + 1, st.s + 1, st.ins, st.del})
			}
			if st.ins < n.I && st.s+st.ins+st.del < n.L {
				add(state{st.p, st.s, st.ins + 1, st.del})
			}
		}
		closeEps(next)
		collect(next, toPos(j+1))
		cur = next
	}

	for st := range cur {
		if st.p < plen {
			need := plen - st.p
			if st.del+need <= n.D && st.s+st.ins+st.del+need <= n.L {
				out = append(out, gEdge{pos: toPos(wlen), s: st.s, ins: st.ins, del: st.del + need})
			}
		}
	}
	return out
}
