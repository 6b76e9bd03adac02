// Package params implements the search parameter normalization described in
// spec.md §3/§4.3 (component C3): turning the caller-supplied, optionally
// unset (S, I, D, L) bounds into a canonical tuple every engine can rely on.
//
// The shape follows coregex's meta.Config/DefaultConfig/Validate pattern:
// an input struct with optional fields, a normalization step that can fail,
// and a typed error carrying the reason for the failure.
package params

import (
	"errors"
	"fmt"
)

// unset is a -1 marker for a bound the caller did not supply. Params does
// not use it: an unsupplied Params field is a nil pointer.
const unset = -1

// Params is the set of caller-supplied edit-distance bounds before
// normalization. Any field left at its zero value (nil) is "unset".
//
// Example:
//
//	p := params.Params{MaxLDist: params.Int(1)}
//	n, err := params.Normalize(p)
type Params struct {
	MaxSubstitutions *int
	MaxInsertions    *int
	MaxDeletions     *int
	MaxLDist         *int
}

// Int returns a pointer to v, for populating the optional Params fields
// inline (params.Params{MaxLDist: params.Int(1)}).
func Int(v int) *int { return &v }

// Normalized is the canonical (S, I, D, L) tuple produced by Normalize. All
// engines and the dispatcher consume this type, never Params directly.
type Normalized struct {
	S, I, D, L int
}

// ErrInvalidParams is the sentinel every InvalidParamsError wraps, so
// callers can test for normalization failure with errors.Is without
// depending on the specific Reason text.
var ErrInvalidParams = errors.New("fuzzysearch: invalid params")

// InvalidParamsError reports why a Params value failed normalization.
type InvalidParamsError struct {
	Reason string
}

func (e *InvalidParamsError) Error() string {
	return "fuzzysearch: invalid params: " + e.Reason
}

// Unwrap lets errors.Is(err, ErrInvalidParams) succeed for any
// InvalidParamsError, regardless of its Reason.
func (e *InvalidParamsError) Unwrap() error { return ErrInvalidParams }

// largeSentinel stands in for an unset S/I/D/L bound during the clamping
// arithmetic of §3, so that "unset" behaves as "unbounded" without
// overflowing on addition.
const largeSentinel = 1 << 30

// Normalize validates p and produces the canonical (S, I, D, L) tuple per
// spec.md §3:
//
//   - every supplied field must be a non-negative integer;
//   - if L is unset, at least one of S, I, D must be set, and L is then
//     computed as S+I+D (treating any still-unset field as 0 for the sum);
//   - if L is set, each of S, I, D is clamped to min(·, L) (unset meaning
//     L), and L itself is clamped to min(L, S+I+D).
//
// Normalize is idempotent: normalizing an already-normalized tuple (wrapped
// back into Params) is a no-op, satisfying invariant 7 in spec.md §8.
func Normalize(p Params) (Normalized, error) {
	for _, f := range []*int{p.MaxSubstitutions, p.MaxInsertions, p.MaxDeletions, p.MaxLDist} {
		if f != nil && *f < 0 {
			return Normalized{}, &InvalidParamsError{Reason: "bounds must be non-negative"}
		}
	}

	if p.MaxLDist == nil {
		if p.MaxSubstitutions == nil && p.MaxInsertions == nil && p.MaxDeletions == nil {
			return Normalized{}, &InvalidParamsError{Reason: "no limitations given"}
		}
		s := valueOr(p.MaxSubstitutions, 0)
		i := valueOr(p.MaxInsertions, 0)
		d := valueOr(p.MaxDeletions, 0)
		return Normalized{S: s, I: i, D: d, L: s + i + d}, nil
	}

	l := *p.MaxLDist
	s := clampToL(valueOr(p.MaxSubstitutions, largeSentinel), l)
	i := clampToL(valueOr(p.MaxInsertions, largeSentinel), l)
	d := clampToL(valueOr(p.MaxDeletions, largeSentinel), l)

	sSum := sumOrSentinel(p.MaxSubstitutions, largeSentinel)
	iSum := sumOrSentinel(p.MaxInsertions, largeSentinel)
	dSum := sumOrSentinel(p.MaxDeletions, largeSentinel)
	sum := sSum + iSum + dSum
	if sum < l {
		l = sum
	}
	return Normalized{S: s, I: i, D: d, L: l}, nil
}

func valueOr(f *int, dflt int) int {
	if f == nil {
		return dflt
	}
	return *f
}

func clampToL(v, l int) int {
	if v > l {
		return l
	}
	return v
}

func sumOrSentinel(f *int, sentinel int) int {
	if f == nil {
		return sentinel
	}
	return *f
}

// String renders the tuple for diagnostics/logging.
func (n Normalized) String() string {
	return fmt.Sprintf("(S=%d, I=%d, D=%d, L=%d)", n.S, n.I, n.D, n.L)
}
