// Package seq provides a uniform, read-only view over the sequences that
// the search engines operate on.
//
// A View is the sequence abstraction every engine is written against: it
// never cares whether the underlying data is a byte string or a slice of
// arbitrary comparable elements, only that it can report its length, hand
// back a sub-view in O(1), and locate an exact occurrence of another view.
//
// Two concrete implementations are provided:
//   - ByteView, backed by a []byte, using SIMD-accelerated substring search
//     (see the simd package) the way coregex's literal scanners do.
//   - ElemView[T], backed by a []T of any comparable element type, using
//     positional equality the way a naive scanner would.
//
// Engines are written against the View interface only; they never type-
// switch on the concrete implementation.
package seq

import "errors"

// ErrEmptyPattern is returned when an operation that requires a non-empty
// needle (SearchExact, an engine's pattern argument, a streamer's pattern)
// is given a zero-length one.
var ErrEmptyPattern = errors.New("fuzzysearch: empty pattern")

// ErrUnsupportedSequence is returned when a sequence cannot supply either a
// native Find or element-wise equality access — i.e. it cannot satisfy the
// View contract at all.
var ErrUnsupportedSequence = errors.New("fuzzysearch: unsupported sequence type")

// View is a read-only, length-known view over a finite ordered collection
// of comparable elements.
//
// Implementations must make Slice and Len O(1); Find may be O(n) but should
// use the fastest locator available for the concrete element type.
type View interface {
	// Len returns the number of elements in the view.
	Len() int

	// At returns the element at index i as an opaque comparable value, for
	// generic element-wise comparison between two views of the same
	// concrete type. Implementations of View that are compared only via
	// Find/Equal need not be called through At directly by engines; it
	// exists so ElemView and ByteView can share comparison helpers.
	At(i int) any

	// Equal reports whether this view and other have the same length and
	// elementwise-equal contents.
	Equal(other View) bool

	// Slice returns the sub-view [lo, hi). Panics if lo/hi are out of
	// [0, Len()] or lo > hi. Must not copy the underlying storage.
	Slice(lo, hi int) View

	// Find returns the first index i in [lo, hi) such that
	// i+needle.Len() <= hi and Slice(i, i+needle.Len()) equals needle, or
	// -1 if there is no such index.
	Find(needle View, lo, hi int) int

	// Bytes returns the view's contents as a []byte when the concrete
	// element type is byte, and ok=false otherwise. Used by callers that
	// want to expose Match.Matched as a []byte without a type assertion.
	Bytes() ([]byte, bool)
}

// SearchExact iterates every index i in [lo, hi) at which needle occurs
// exactly in view, in ascending order.
//
// It returns ErrEmptyPattern if needle is empty, matching the streamer and
// engine boundary behavior documented for the exact-match engine.
func SearchExact(view View, needle View, lo, hi int) (func(yield func(int) bool), error) {
	if needle.Len() == 0 {
		return nil, ErrEmptyPattern
	}
	return func(yield func(int) bool) {
		pos := lo
		for {
			i := view.Find(needle, pos, hi)
			if i < 0 {
				return
			}
			if !yield(i) {
				return
			}
			pos = i + 1
		}
	}, nil
}
