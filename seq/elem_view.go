package seq

// ElemView is a View over a []T of any comparable element type — the
// "general element sequence (lists/tuples of any equatable element)"
// concrete type named in the sequence abstraction's design (§4.1).
//
// Find has no native substring locator to dispatch to, so it is
// implemented exactly as §4.1 specifies for element-indexed sequences:
// locate each occurrence of the first needle element, then verify the
// remaining positions by equality.
type ElemView[T comparable] struct {
	s []T
}

// NewElemView wraps s in an ElemView. s is not copied; callers must not
// mutate it for the lifetime of the view.
func NewElemView[T comparable](s []T) ElemView[T] {
	return ElemView[T]{s: s}
}

// Len implements View.
func (v ElemView[T]) Len() int { return len(v.s) }

// At implements View.
func (v ElemView[T]) At(i int) any { return v.s[i] }

// Equal implements View.
func (v ElemView[T]) Equal(other View) bool {
	if ov, ok := other.(ElemView[T]); ok {
		if len(v.s) != len(ov.s) {
			return false
		}
		for i := range v.s {
			if v.s[i] != ov.s[i] {
				return false
			}
		}
		return true
	}
	return genericEqual(v, other)
}

// Slice implements View.
func (v ElemView[T]) Slice(lo, hi int) View {
	if lo < 0 || hi > len(v.s) || lo > hi {
		panic("seq: ElemView.Slice out of range")
	}
	return ElemView[T]{s: v.s[lo:hi]}
}

// Find implements View per §4.1's element-indexed algorithm: find each
// occurrence of the first needle element in [lo, hi-(|needle|-1)), then
// verify positions 1..|needle|-1 for element equality.
func (v ElemView[T]) Find(needle View, lo, hi int) int {
	nlen := needle.Len()
	if hi > len(v.s) {
		hi = len(v.s)
	}
	if lo < 0 {
		lo = 0
	}
	if nlen == 0 {
		if lo <= hi {
			return lo
		}
		return -1
	}
	if nv, ok := needle.(ElemView[T]); ok {
		first := nv.s[0]
		limit := hi - (nlen - 1)
		for i := lo; i < limit; i++ {
			if v.s[i] != first {
				continue
			}
			match := true
			for k := 1; k < nlen; k++ {
				if v.s[i+k] != nv.s[k] {
					match = false
					break
				}
			}
			if match {
				return i
			}
		}
		return -1
	}
	return findElementwise(v, needle, lo, hi)
}

// Bytes implements View. ElemView never reports a byte backing, even when
// T is byte, so callers always get a type-correct refusal here; use
// ByteView for byte-backed sequences that want the fast Bytes() path.
func (v ElemView[T]) Bytes() ([]byte, bool) { return nil, false }

// Raw returns the underlying slice without copying. Callers must treat it
// as read-only.
func (v ElemView[T]) Raw() []T { return v.s }
