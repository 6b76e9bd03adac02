// Package engine implements the search engine family described in spec.md
// §4.4-§4.7 (components C4-C7): exact search, substitutions-only search,
// full Levenshtein search, and the generic four-parameter search, each
// with the plain candidate-set/ring-counter algorithm ("A") and, where the
// pattern is long enough relative to its error budget, the n-gram-anchored
// acceleration ("B").
//
// Every engine is a pure function of (pattern, text, params) — no engine
// retains state across calls, matching the concurrency model in spec.md
// §5. Engines yield raw, possibly-overlapping matches; callers that want
// the public, disjoint, start-ordered contract pass the result through
// match.Consolidate (component C10).
package engine

import (
	"errors"

	"github.com/coregx/fuzzysearch/match"
	"github.com/coregx/fuzzysearch/seq"
)

// ErrSubseqTooShort names the condition in which the pattern is too short
// relative to the error budget to tile even a single q-gram
// (q = m/(bound+1) < 1). No engine in this package returns it: the
// n-gram-anchored algorithms are unexported and reached only through
// SearchRaw, which selects them once q reaches NgramAnchorThreshold, and if
// the pattern still cannot be tiled they fall back to the plain algorithm
// (A) instead of failing.
var ErrSubseqTooShort = errors.New("fuzzysearch: pattern too short for n-gram-anchored search")

// Engine is the common shape of every search engine in this package.
//
// SearchRaw returns the engine's raw match stream for one (pattern, text)
// pair; ExtraItems reports how many text elements beyond len(pattern)-1 a
// chunked window must retain so that the chunked streamer (component C9)
// never splits a potential match across a window boundary.
type Engine interface {
	SearchRaw(pattern, text seq.View) ([]match.Match, error)
	ExtraItems(patternLen int) int
}

// at and eq adapt seq.View's At(i) any into the per-element
// comparisons every engine performs; kept as named helpers so the engine
// bodies read as "pattern[p] == text[i]" rather than repeating type
// assertions inline.
func at(v seq.View, i int) any { return v.At(i) }
func eq(a, b any) bool         { return a == b }
