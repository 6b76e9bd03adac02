package params

import "testing"

func TestNormalizeNoLimitsGiven(t *testing.T) {
	_, err := Normalize(Params{})
	if err == nil {
		t.Fatal("expected error for no limits given")
	}
}

func TestNormalizeNegativeRejected(t *testing.T) {
	_, err := Normalize(Params{MaxSubstitutions: Int(-1)})
	if err == nil {
		t.Fatal("expected error for negative bound")
	}
}

func TestNormalizeLUnsetSumsComponents(t *testing.T) {
	n, err := Normalize(Params{MaxSubstitutions: Int(1), MaxInsertions: Int(2)})
	if err != nil {
		t.Fatal(err)
	}
	if n.S != 1 || n.I != 2 || n.D != 0 || n.L != 3 {
		t.Fatalf("got %+v", n)
	}
}

func TestNormalizeLSetClampsComponents(t *testing.T) {
	n, err := Normalize(Params{MaxLDist: Int(1)})
	if err != nil {
		t.Fatal(err)
	}
	if n.S != 1 || n.I != 1 || n.D != 1 || n.L != 1 {
		t.Fatalf("got %+v, want S=I=D=L=1", n)
	}
}

func TestNormalizeLClampedBySum(t *testing.T) {
	n, err := Normalize(Params{MaxSubstitutions: Int(1), MaxInsertions: Int(1), MaxDeletions: Int(1), MaxLDist: Int(10)})
	if err != nil {
		t.Fatal(err)
	}
	if n.L != 3 {
		t.Fatalf("L = %d, want 3 (clamped by S+I+D)", n.L)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n1, err := Normalize(Params{MaxLDist: Int(2)})
	if err != nil {
		t.Fatal(err)
	}
	n2, err := Normalize(Params{MaxSubstitutions: Int(n1.S), MaxInsertions: Int(n1.I), MaxDeletions: Int(n1.D), MaxLDist: Int(n1.L)})
	if err != nil {
		t.Fatal(err)
	}
	if n1 != n2 {
		t.Fatalf("normalize not idempotent: %+v != %+v", n1, n2)
	}
}

func TestInvariantLNeverExceedsSum(t *testing.T) {
	cases := []Params{
		{MaxLDist: Int(5)},
		{MaxSubstitutions: Int(1), MaxLDist: Int(5)},
		{MaxSubstitutions: Int(1), MaxInsertions: Int(1), MaxDeletions: Int(1)},
	}
	for _, p := range cases {
		n, err := Normalize(p)
		if err != nil {
			t.Fatal(err)
		}
		if n.L > n.S+n.I+n.D {
			t.Errorf("L=%d > S+I+D=%d for %+v", n.L, n.S+n.I+n.D, n)
		}
	}
}
