// Package match implements the match model (component C2) and the
// overlapping-match consolidation (component C10) described in spec.md
// §3/§4.2.
//
// Match is the immutable record every engine yields; Consolidate is the
// shared tail stage that turns an engine's raw (possibly overlapping)
// output into the caller-facing, disjoint, start-ordered result list.
package match

import "github.com/coregx/fuzzysearch/seq"

// Match is an immutable record of one approximate occurrence of a pattern
// in a text: the half-open interval [Start, End) it occupies, the edit
// distance Dist it was found at, and the matched text slice itself.
//
// Equality and hashing are defined over (Start, End, Dist) only; Matched is
// derived from the text and excluded from identity, so implementations may
// attach it lazily (it is always just Text.Slice(Start, End) in practice).
type Match struct {
	Start, End, Dist int
	Matched          seq.View
}

// New creates a Match, panicking if the core invariant 0 <= start <= end is
// violated or dist is negative — these are programming errors in the
// engine that constructs the match, not recoverable input errors.
func New(start, end, dist int, matched seq.View) Match {
	if start < 0 || start > end || dist < 0 {
		panic("match: invalid match bounds")
	}
	return Match{Start: start, End: end, Dist: dist, Matched: matched}
}

// Len returns End - Start.
func (m Match) Len() int { return m.End - m.Start }

// key is the identity triple used for equality, hashing, and sorting.
type key struct {
	start, end, dist int
}

func (m Match) key() key { return key{m.Start, m.End, m.Dist} }

// Equal reports whether two matches have the same (Start, End, Dist).
func (m Match) Equal(o Match) bool { return m.key() == o.key() }

// overlaps reports whether the half-open intervals of m and o intersect,
// per spec.md §3: not (a.end <= b.start or b.end <= a.start).
func (m Match) overlaps(o Match) bool {
	return !(m.End <= o.Start || o.End <= m.Start)
}
