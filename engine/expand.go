package engine

import "github.com/coregx/fuzzysearch/seq"

// edge is one viable way to extend an n-gram anchor: reaching text offset
// pos at a cost of dist edits.
type edge struct{ pos, dist int }

// window bounds how far an expansion ever needs to look: beyond
// plen+budget text elements, no alignment can still be within budget.
func window(remaining, budget, available int) int {
	w := remaining + budget
	if w > available {
		w = available
	}
	return w
}

// expandRight finds every way to align pattern[pStart:] against a prefix
// of text[tStart:] within budget edits, per spec.md §4.6.B's directional
// expansion. It returns one edge per distinct valid end position.
func expandRight(pattern, text seq.View, pStart, tStart, budget int) []edge {
	plen := pattern.Len() - pStart
	wlen := window(plen, budget, text.Len()-tStart)
	return bandedEdit(
		func(i int) any { return at(pattern, pStart+i) }, plen,
		func(j int) any { return at(text, tStart+j) }, wlen,
		budget,
		func(j int) int { return tStart + j },
	)
}

// expandLeft finds every way to align pattern[:pEnd] against a suffix of
// text[:tEnd] within budget edits, scanning both sequences back to front
// so the same banded DP used by expandRight applies unchanged.
func expandLeft(pattern, text seq.View, pEnd, tEnd, budget int) []edge {
	plen := pEnd
	wlen := window(plen, budget, tEnd)
	return bandedEdit(
		func(i int) any { return at(pattern, pEnd-1-i) }, plen,
		func(j int) any { return at(text, tEnd-1-j) }, wlen,
		budget,
		func(j int) int { return tEnd - j },
	)
}

// bandedEdit computes, via the classic O(plen*wlen) edit-distance table,
// every text-side length j in [0, wlen] such that the plen-element
// sequence given by pAt can be turned into the j-element sequence given by
// tAt for at most budget edits (substitutions, insertions of a text
// element, or deletions of a pattern element). toPos converts a length j
// into the actual text offset the caller wants reported.
func bandedEdit(pAt func(int) any, plen int, tAt func(int) any, wlen int, budget int, toPos func(int) int) []edge {
	prev := make([]int, wlen+1)
	cur := make([]int, wlen+1)
	for j := 0; j <= wlen; j++ {
		prev[j] = j
	}

	for i := 1; i <= plen; i++ {
		cur[0] = i
		pc := pAt(i - 1)
		for j := 1; j <= wlen; j++ {
			cost := prev[j-1]
			if !eq(pc, tAt(j-1)) {
				cost++
			}
			if v := prev[j] + 1; v < cost { // delete a pattern element
				cost = v
			}
			if v := cur[j-1] + 1; v < cost { // insert a text element
				cost = v
			}
			cur[j] = cost
		}
		prev, cur = cur, prev
	}

	var out []edge
	for j := 0; j <= wlen; j++ {
		if prev[j] <= budget {
			out = append(out, edge{pos: toPos(j), dist: prev[j]})
		}
	}
	return out
}
