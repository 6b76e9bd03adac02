package engine

import (
	"github.com/coregx/fuzzysearch/match"
	"github.com/coregx/fuzzysearch/seq"
)

// Exact implements component C4: dist-0 search, a thin wrapper over
// seq.SearchExact. It exists as an Engine so the dispatcher (component C8)
// can select it uniformly alongside the approximate engines.
type Exact struct{}

// NewExact returns the exact-match engine.
func NewExact() Exact { return Exact{} }

// SearchRaw returns every occurrence of pattern in text at distance 0.
// Occurrences may overlap (e.g. pattern "aa" against text "aaa"); the
// caller consolidates per the shared C10 stage like every other engine.
func (Exact) SearchRaw(pattern, text seq.View) ([]match.Match, error) {
	it, err := seq.SearchExact(text, pattern, 0, text.Len())
	if err != nil {
		return nil, err
	}
	m := pattern.Len()
	var out []match.Match
	it(func(start int) bool {
		out = append(out, match.New(start, start+m, 0, text.Slice(start, start+m)))
		return true
	})
	return out, nil
}

// ExtraItems is always 0: an exact match can never straddle a chunk
// boundary by more than len(pattern)-1 elements, the baseline every
// engine already gets from the streamer's window.
func (Exact) ExtraItems(patternLen int) int { return 0 }
