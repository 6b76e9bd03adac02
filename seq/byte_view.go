package seq

import (
	"bytes"

	"github.com/coregx/fuzzysearch/simd"
)

// ByteView is a View over a []byte, the "byte-like sequence with a fast
// substring locator" concrete type named in the sequence abstraction's
// design (§4.1). Find dispatches to simd.Memchr/simd.Memmem, the same
// SIMD-accelerated primitives coregex's literal prefilters use.
type ByteView struct {
	b []byte
}

// NewByteView wraps b in a ByteView. b is not copied; callers must not
// mutate it for the lifetime of the view.
func NewByteView(b []byte) ByteView {
	return ByteView{b: b}
}

// Len implements View.
func (v ByteView) Len() int { return len(v.b) }

// At implements View.
func (v ByteView) At(i int) any { return v.b[i] }

// Equal implements View.
func (v ByteView) Equal(other View) bool {
	ob, ok := other.Bytes()
	if !ok {
		return genericEqual(v, other)
	}
	return bytes.Equal(v.b, ob)
}

// Slice implements View.
func (v ByteView) Slice(lo, hi int) View {
	if lo < 0 || hi > len(v.b) || lo > hi {
		panic("seq: ByteView.Slice out of range")
	}
	return ByteView{b: v.b[lo:hi]}
}

// Find implements View. When needle is itself a ByteView, it uses
// simd.Memchr (single byte) or simd.Memmem (general substring) restricted
// to the [lo, hi) window; otherwise it falls back to elementwise scanning.
func (v ByteView) Find(needle View, lo, hi int) int {
	nb, ok := needle.Bytes()
	if !ok {
		return findElementwise(v, needle, lo, hi)
	}
	if lo < 0 {
		lo = 0
	}
	if hi > len(v.b) {
		hi = len(v.b)
	}
	if lo > hi || len(nb) == 0 || len(nb) > hi-lo {
		if len(nb) == 0 && lo <= hi {
			return lo
		}
		return -1
	}
	window := v.b[lo:hi]
	var rel int
	if len(nb) == 1 {
		rel = simd.Memchr(window, nb[0])
	} else {
		rel = simd.Memmem(window, nb)
	}
	if rel < 0 {
		return -1
	}
	return lo + rel
}

// Bytes implements View.
func (v ByteView) Bytes() ([]byte, bool) { return v.b, true }

// findElementwise locates needle in view[lo:hi) by direct element
// comparison; used when needle is not itself byte-backed (so a mixed
// comparison between a ByteView haystack and an ElemView[byte] needle,
// say, still behaves correctly per the View contract).
func findElementwise(view View, needle View, lo, hi int) int {
	nlen := needle.Len()
	if nlen == 0 {
		if lo <= hi {
			return lo
		}
		return -1
	}
	if hi > view.Len() {
		hi = view.Len()
	}
	for i := lo; i+nlen <= hi; i++ {
		if view.Slice(i, i+nlen).Equal(needle) {
			return i
		}
	}
	return -1
}

// genericEqual compares two views element by element when a fast-path
// byte comparison isn't available.
func genericEqual(a, b View) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}
