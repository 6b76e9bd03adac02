// Package fuzzysearch finds every approximate occurrence of a pattern in a
// text within caller-supplied edit-distance bounds.
//
// The package is a thin convenience layer over the core described in
// spec.md: params.Normalize validates the bounds (component C3),
// dispatch.Select picks the narrowest applicable engine (C4-C8), the engine
// itself does the searching (C4-C7), and Consolidate (C10) collapses
// overlapping raw matches into one representative per group. Find and
// FindStreaming wire those four steps together for the common case; the
// underlying packages remain directly usable for advanced callers who want
// to skip consolidation, reuse a normalized parameter tuple across several
// searches, or drive an engine by hand.
//
// Example:
//
//	pattern := seq.NewByteView([]byte("PATTERN"))
//	text := seq.NewByteView([]byte("---PATERN---"))
//	matches, err := fuzzysearch.Find(pattern, text, fuzzysearch.WithMaxLDist(1))
//	// matches == [{3, 9, 1, "PATERN"}]
package fuzzysearch

import (
	"errors"
	"io"
	"iter"
	"sort"

	"github.com/coregx/fuzzysearch/dispatch"
	"github.com/coregx/fuzzysearch/engine"
	"github.com/coregx/fuzzysearch/match"
	"github.com/coregx/fuzzysearch/params"
	"github.com/coregx/fuzzysearch/seq"
	"github.com/coregx/fuzzysearch/stream"
)

// Match is an approximate occurrence of a pattern: the half-open interval
// [Start, End) it occupies in the text, the edit distance Dist it was found
// at, and the matched text slice itself. See match.Match for the full
// invariants (component C2).
type Match = match.Match

// Consolidate replaces a set of possibly-overlapping raw matches — as
// returned by an engine's SearchRaw, before Find's own consolidation step —
// with one representative per group of transitively overlapping matches.
// Exposed standalone per spec.md §9: "exposing pre-consolidation output is
// useful for debugging and equivalence testing and must remain available
// as a separate engine-level call."
func Consolidate(matches []Match) []Match { return match.Consolidate(matches) }

// Sentinel errors. Every engine, the params package, and the seq package
// wrap one of these so callers can test failures with errors.Is without
// depending on which internal package produced the error.
var (
	// ErrEmptyPattern is returned whenever the pattern argument is empty.
	ErrEmptyPattern = seq.ErrEmptyPattern

	// ErrInvalidParams is returned when the supplied bounds fail
	// normalization (negative, or no bound supplied at all).
	ErrInvalidParams = params.ErrInvalidParams

	// ErrSubseqTooShort names the case of a pattern too short relative to
	// its error budget to tile even one q-gram. No engine returns it: the
	// engines fall back to their plain algorithm in that case (see
	// engine.ErrSubseqTooShort).
	ErrSubseqTooShort = engine.ErrSubseqTooShort

	// ErrUnsupportedSequence is returned when a sequence view can supply
	// neither a native Find nor element-wise equality access.
	ErrUnsupportedSequence = seq.ErrUnsupportedSequence
)

// Find locates every substring of text within the bounds given by opts of
// pattern, and returns them consolidated: sorted by Start, with no two
// overlapping. At least one of WithMaxSubstitutions, WithMaxInsertions,
// WithMaxDeletions or WithMaxLDist must be supplied, or Normalize fails with
// ErrInvalidParams.
func Find(pattern, text seq.View, opts ...Option) ([]Match, error) {
	o := newOptions(opts)
	n, err := params.Normalize(o.p)
	if err != nil {
		return nil, err
	}
	eng := dispatch.SelectWithConfig(n, o.dispatchConfig())
	raw, err := eng.SearchRaw(pattern, text)
	if err != nil {
		return nil, err
	}
	return match.Consolidate(raw), nil
}

// FindBytes is Find specialized for []byte pattern/text, the common case;
// it wraps both in seq.ByteView, which searches via the simd package's
// accelerated substring locator.
func FindBytes(pattern, text []byte, opts ...Option) ([]Match, error) {
	return Find(seq.NewByteView(pattern), seq.NewByteView(text), opts...)
}

// FindElems is Find specialized for a slice of any comparable element type,
// for callers searching over tokenized or otherwise non-byte sequences.
func FindElems[T comparable](pattern, text []T, opts ...Option) ([]Match, error) {
	return Find(seq.NewElemView(pattern), seq.NewElemView(text), opts...)
}

// FindStreaming is Find for a text too large to hold in memory, delivered
// as successive reads from r. It normalizes opts and builds the chunked
// streamer eagerly (surfacing ErrEmptyPattern or ErrInvalidParams
// immediately); the returned iterator then drives r lazily, yielding
// matches in ascending Start order as soon as each window resolves them.
// The returned error func reports any read or search error encountered
// once the iterator has been fully drained.
func FindStreaming(pattern []byte, r stream.ByteReader, opts ...Option) (iter.Seq[Match], func() error, error) {
	o := newOptions(opts)
	n, err := params.Normalize(o.p)
	if err != nil {
		return nil, nil, err
	}
	eng := dispatch.SelectWithConfig(n, o.dispatchConfig())
	streamer, err := stream.NewByteStreamer(pattern, eng, o.streamConfig())
	if err != nil {
		return nil, nil, err
	}
	it, errFn := streamer.Search(r)
	return it, errFn, nil
}

// FindElemsStreaming is FindStreaming generalized to a stream of any
// comparable element type.
func FindElemsStreaming[T comparable](pattern []T, r stream.ElemReader[T], opts ...Option) (iter.Seq[Match], func() error, error) {
	o := newOptions(opts)
	n, err := params.Normalize(o.p)
	if err != nil {
		return nil, nil, err
	}
	eng := dispatch.SelectWithConfig(n, o.dispatchConfig())
	streamer, err := stream.NewElemStreamer(pattern, eng, o.streamConfig())
	if err != nil {
		return nil, nil, err
	}
	it, errFn := streamer.Search(r)
	return it, errFn, nil
}

// AnyMatch pairs a Match with the index into the patterns slice that
// produced it, for FindAny/FindAnyStreaming's multi-pattern results.
type AnyMatch struct {
	PatternIndex int
	Match        Match
}

// FindAny searches text for every pattern in patterns, under the same
// bounds, in a single call. Grounded on the original Python project's
// multi.py (find_near_matches_in_file and friends): a convenience for the
// common case of testing one text against several candidate patterns
// without re-normalizing bounds or re-selecting an engine per pattern.
// Results are sorted by Match.Start, then by PatternIndex.
func FindAny(patterns []seq.View, text seq.View, opts ...Option) ([]AnyMatch, error) {
	o := newOptions(opts)
	n, err := params.Normalize(o.p)
	if err != nil {
		return nil, err
	}
	cfg := o.dispatchConfig()

	var out []AnyMatch
	for idx, p := range patterns {
		eng := dispatch.SelectWithConfig(n, cfg)
		raw, err := eng.SearchRaw(p, text)
		if err != nil {
			return nil, err
		}
		for _, m := range match.Consolidate(raw) {
			out = append(out, AnyMatch{PatternIndex: idx, Match: m})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Match.Start != out[j].Match.Start {
			return out[i].Match.Start < out[j].Match.Start
		}
		return out[i].PatternIndex < out[j].PatternIndex
	})
	return out, nil
}

// FindAnyBytes is FindAny specialized for []byte patterns/text.
func FindAnyBytes(patterns [][]byte, text []byte, opts ...Option) ([]AnyMatch, error) {
	views := make([]seq.View, len(patterns))
	for i, p := range patterns {
		views[i] = seq.NewByteView(p)
	}
	return FindAny(views, seq.NewByteView(text), opts...)
}

// FindAnyStreaming searches a streamed text for every pattern in patterns
// in one pass, sharing the chunked read the way the original's multi.py
// amortizes a single file scan across several patterns. Internally it
// drives one shared sliding window sized for the most demanding pattern's
// engine (the largest ExtraItems among them) and runs every pattern's
// engine over each window, so the text is read from r exactly once
// regardless of len(patterns).
func FindAnyStreaming(patterns [][]byte, r stream.ByteReader, opts ...Option) (iter.Seq[AnyMatch], func() error, error) {
	o := newOptions(opts)
	n, err := params.Normalize(o.p)
	if err != nil {
		return nil, nil, err
	}
	cfg := o.dispatchConfig()

	engines := make([]engine.Engine, len(patterns))
	views := make([]seq.View, len(patterns))
	maxWindow := 0
	for i, p := range patterns {
		if len(p) == 0 {
			return nil, nil, seq.ErrEmptyPattern
		}
		e := dispatch.SelectWithConfig(n, cfg)
		engines[i] = e
		views[i] = seq.NewByteView(p)
		if w := len(p) - 1 + e.ExtraItems(len(p)); w > maxWindow {
			maxWindow = w
		}
	}

	sc := o.streamConfig()
	window := maxWindow + 1
	if sc.WindowSize > window {
		window = sc.WindowSize
	}

	it, errFn := runMultiStream(views, engines, window, r)
	return it, errFn, nil
}

// runMultiStream implements the same sliding-window protocol as
// stream.runStream (component C9), generalized to run several (pattern,
// engine) pairs against one shared window instead of one.
func runMultiStream(patterns []seq.View, engines []engine.Engine, window int, r stream.ByteReader) (iter.Seq[AnyMatch], func() error) {
	extras := make([]int, len(patterns))
	maxExtra := 0
	for i, p := range patterns {
		extras[i] = p.Len() - 1 + engines[i].ExtraItems(p.Len())
		if extras[i] > maxExtra {
			maxExtra = extras[i]
		}
	}
	var finalErr error

	it := func(yield func(AnyMatch) bool) {
		var carry []byte
		base := 0
		buf := make([]byte, window)

		for {
			copy(buf, carry)
			n, err := readFullBytes(r, buf[len(carry):])
			total := len(carry) + n
			winSlice := buf[:total]

			eof := false
			if err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					eof = true
				} else {
					finalErr = err
					return
				}
			}

			tv := seq.NewByteView(winSlice)
			type tagged struct {
				idx int
				m   Match
			}
			var all []tagged
			for i, p := range patterns {
				raw, serr := engines[i].SearchRaw(p, tv)
				if serr != nil {
					finalErr = serr
					return
				}
				for _, m := range match.Consolidate(raw) {
					all = append(all, tagged{i, m})
				}
			}

			carryStart := total - maxExtra
			if carryStart < 0 {
				carryStart = 0
			}

			sort.Slice(all, func(a, b int) bool {
				if all[a].m.Start != all[b].m.Start {
					return all[a].m.Start < all[b].m.Start
				}
				return all[a].idx < all[b].idx
			})
			for _, t := range all {
				if !eof && t.m.Start >= carryStart {
					continue
				}
				abs := match.New(base+t.m.Start, base+t.m.End, t.m.Dist, t.m.Matched)
				if !yield(AnyMatch{PatternIndex: t.idx, Match: abs}) {
					return
				}
			}

			if eof {
				return
			}

			carry = append([]byte(nil), winSlice[carryStart:]...)
			base += carryStart
		}
	}
	return it, func() error { return finalErr }
}

func readFullBytes(r stream.ByteReader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			if n > 0 && errors.Is(err, io.EOF) {
				return n, io.ErrUnexpectedEOF
			}
			return n, err
		}
		if m == 0 {
			return n, io.EOF
		}
	}
	return n, nil
}
