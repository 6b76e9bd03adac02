package dispatch

import (
	"testing"

	"github.com/coregx/fuzzysearch/engine"
	"github.com/coregx/fuzzysearch/params"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateRejectsZeroThreshold(t *testing.T) {
	c := Config{NgramAnchorThreshold: 0}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for zero threshold")
	}
}

func TestSelectExactWhenLZero(t *testing.T) {
	e := Select(params.Normalized{})
	if _, ok := e.(engine.Exact); !ok {
		t.Fatalf("got %T, want engine.Exact", e)
	}
}

func TestSelectSubstitutionsWhenNoInsertDelete(t *testing.T) {
	e := Select(params.Normalized{S: 2, L: 2})
	sub, ok := e.(engine.Substitutions)
	if !ok {
		t.Fatalf("got %T, want engine.Substitutions", e)
	}
	if sub.K != 2 {
		t.Fatalf("K = %d, want 2", sub.K)
	}
}

func TestSelectLevenshteinWhenLWithinMinBound(t *testing.T) {
	e := Select(params.Normalized{S: 3, I: 3, D: 3, L: 2})
	lev, ok := e.(engine.Levenshtein)
	if !ok {
		t.Fatalf("got %T, want engine.Levenshtein", e)
	}
	if lev.K != 2 {
		t.Fatalf("K = %d, want 2", lev.K)
	}
}

func TestSelectGenericOtherwise(t *testing.T) {
	e := Select(params.Normalized{S: 1, I: 2, D: 0, L: 3})
	if _, ok := e.(engine.Generic); !ok {
		t.Fatalf("got %T, want engine.Generic", e)
	}
}

func TestSelectWithConfigThreadsThreshold(t *testing.T) {
	cfg := Config{NgramAnchorThreshold: 9}
	e := SelectWithConfig(params.Normalized{S: 3, I: 3, D: 3, L: 2}, cfg)
	lev := e.(engine.Levenshtein)
	if lev.NgramAnchorThreshold != 9 {
		t.Fatalf("NgramAnchorThreshold = %d, want 9", lev.NgramAnchorThreshold)
	}
}
