package engine

import (
	"sort"
	"testing"

	"github.com/coregx/fuzzysearch/match"
	"github.com/coregx/fuzzysearch/seq"
)

func sortedDists(ms []match.Match) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = m.Dist
	}
	sort.Ints(out)
	return out
}

// TestSubstitutionsRingCounterRecomputesEachAlignment guards against the
// two-position rolling-delta bug: pattern and text realign completely at
// every start, so a window's Hamming distance cannot be derived from its
// predecessor's by touching only the elements entering and leaving.
// pattern="AB" against text="AAB": start=0 is "AA" (dist 1), start=1 is
// "AB" (dist 0) — a rolling delta sees no change at either edge and would
// wrongly keep reporting dist 1 for start=1.
func TestSubstitutionsRingCounterRecomputesEachAlignment(t *testing.T) {
	pattern := seq.NewByteView([]byte("AB"))
	text := seq.NewByteView([]byte("AAB"))

	got, err := NewSubstitutions(1).SearchRaw(pattern, text)
	if err != nil {
		t.Fatal(err)
	}

	want := map[int]int{0: 1, 1: 0}
	if len(got) != len(want) {
		t.Fatalf("got %d matches, want %d: %+v", len(got), len(want), got)
	}
	for _, m := range got {
		if m.End-m.Start != 2 {
			t.Errorf("match %+v has length %d, want 2", m, m.End-m.Start)
		}
		wantDist, ok := want[m.Start]
		if !ok {
			t.Errorf("unexpected match start %d: %+v", m.Start, m)
			continue
		}
		if m.Dist != wantDist {
			t.Errorf("start=%d: dist = %d, want %d", m.Start, m.Dist, wantDist)
		}
	}
}

func TestSubstitutionsRingCounterExactHammingDistance(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		text    string
		k       int
		want    map[int]int // start -> exact Hamming distance
	}{
		{"no mismatches", "abc", "xxabcxx", 1, map[int]int{2: 0}},
		{"one mismatch each window", "aaaa", "aaabaaaa", 1, map[int]int{
			0: 1, 1: 1, 2: 1, 3: 1, 4: 0,
		}},
		{"repeated pattern char, distinct diagonals", "AA", "AAA", 0, map[int]int{
			0: 0, 1: 0,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pattern := seq.NewByteView([]byte(tc.pattern))
			text := seq.NewByteView([]byte(tc.text))
			got, err := NewSubstitutions(tc.k).SearchRaw(pattern, text)
			if err != nil {
				t.Fatal(err)
			}
			seen := make(map[int]int, len(got))
			for _, m := range got {
				seen[m.Start] = m.Dist
			}
			for start, wantDist := range tc.want {
				if wantDist > tc.k {
					continue
				}
				gotDist, ok := seen[start]
				if !ok {
					t.Errorf("missing match at start=%d (want dist %d)", start, wantDist)
					continue
				}
				if gotDist != wantDist {
					t.Errorf("start=%d: dist = %d, want %d", start, gotDist, wantDist)
				}
			}
		})
	}
}

func TestSubstitutionsRingCounterOverElemView(t *testing.T) {
	pattern := seq.NewElemView([]int{1, 2})
	text := seq.NewElemView([]int{1, 1, 2})

	got, err := NewSubstitutions(1).SearchRaw(pattern, text)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[int]int, len(got))
	for _, m := range got {
		seen[m.Start] = m.Dist
	}
	if d, ok := seen[0]; !ok || d != 1 {
		t.Errorf("start=0: dist = %v, want 1", seen)
	}
	if d, ok := seen[1]; !ok || d != 0 {
		t.Errorf("start=1: dist = %v, want 0", seen)
	}
}

func TestSubstitutionsAgreesAcrossAandBAlgorithms(t *testing.T) {
	pattern := []byte("ABCDEFGHIJKL")
	text := []byte("xxABCDEFGHIJKLxxABCXEFGHIJKLxxABCDEFGHIJZLxx")

	a := NewSubstitutions(1)
	a.NgramAnchorThreshold = 1000 // force algorithm A
	b := NewSubstitutions(1)
	b.NgramAnchorThreshold = 1 // force algorithm B

	gotA, err := a.SearchRaw(seq.NewByteView(pattern), seq.NewByteView(text))
	if err != nil {
		t.Fatal(err)
	}
	gotB, err := b.SearchRaw(seq.NewByteView(pattern), seq.NewByteView(text))
	if err != nil {
		t.Fatal(err)
	}

	da, db := sortedDists(match.Consolidate(gotA)), sortedDists(match.Consolidate(gotB))
	if len(da) != len(db) {
		t.Fatalf("algorithm A found %v, algorithm B found %v", da, db)
	}
	for i := range da {
		if da[i] != db[i] {
			t.Fatalf("algorithm A found %v, algorithm B found %v", da, db)
		}
	}
}
