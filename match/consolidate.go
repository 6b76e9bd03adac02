package match

import "sort"

// Consolidate replaces a set of (possibly overlapping) raw matches with one
// representative per equivalence class, per spec.md §4.2 (component C10).
//
// Two matches are in the same class iff they are connected by a chain of
// pairwise-overlapping half-open intervals — spec.md phrases this as
// iteratively merging matches into interval groups; because overlap here
// is purely 1-dimensional, that union-find process has a closed-form
// sweep: sort by Start, then fold each match into the currently open group
// whenever its Start falls before the group's running max End, else close
// the group and start a new one. The result is identical to the pairwise
// merge, just without materializing the intermediate groups.
//
// Within each class, the representative is chosen by (dist asc, length
// desc, start asc), matching spec.md's tie-break order. The returned slice
// is sorted by Start ascending and its intervals are pairwise disjoint,
// satisfying invariant 4 in spec.md §8. Consolidate is idempotent
// (invariant 6): consolidating an already-consolidated list returns it
// unchanged, since every group in that case has exactly one member.
func Consolidate(matches []Match) []Match {
	if len(matches) == 0 {
		return nil
	}

	ordered := make([]Match, len(matches))
	copy(ordered, matches)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}
		return ordered[i].End < ordered[j].End
	})

	result := make([]Match, 0, len(ordered))

	groupStart := 0
	groupMaxEnd := ordered[0].End
	flush := func(end int) {
		result = append(result, representative(ordered[groupStart:end]))
	}

	for i := 1; i < len(ordered); i++ {
		m := ordered[i]
		if m.Start < groupMaxEnd {
			if m.End > groupMaxEnd {
				groupMaxEnd = m.End
			}
			continue
		}
		flush(i)
		groupStart = i
		groupMaxEnd = m.End
	}
	flush(len(ordered))

	return result
}

// representative picks the best match in a group per spec.md's tie-break
// order: smallest dist, then longest span, then smallest start.
func representative(group []Match) Match {
	best := group[0]
	for _, m := range group[1:] {
		if better(m, best) {
			best = m
		}
	}
	return best
}

func better(a, b Match) bool {
	if a.Dist != b.Dist {
		return a.Dist < b.Dist
	}
	if al, bl := a.Len(), b.Len(); al != bl {
		return al > bl
	}
	return a.Start < b.Start
}
