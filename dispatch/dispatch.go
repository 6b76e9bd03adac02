// Package dispatch implements component C8: selecting which search engine
// (C4-C7) handles a normalized parameter tuple, and the tunables that
// shape that choice and the n-gram acceleration inside each engine.
//
// Config/DefaultConfig/Validate follows the same shape as coregex's
// meta.Config/DefaultConfig/Validate, and Select mirrors meta.Strategy's
// selection function, here choosing among the fixed C4-C7 engine family
// instead of among regex execution strategies.
package dispatch

import (
	"fmt"

	"github.com/coregx/fuzzysearch/engine"
	"github.com/coregx/fuzzysearch/params"
)

// Config holds tunables for the dispatcher and the engines it builds.
// Every field has a usable zero-adjacent default via DefaultConfig.
type Config struct {
	// NgramAnchorThreshold is the minimum tiling quotient q = m/(bound+1)
	// at which an n-gram-anchored engine variant is preferred over its
	// plain candidate-set algorithm. spec.md fixes this at 3 for every
	// engine family; exposed here so advanced callers can force the A-only
	// path (e.g. for testing) by setting it above any reachable q.
	NgramAnchorThreshold int
}

// DefaultConfig returns the configuration spec.md's engines use when no
// caller override is given.
func DefaultConfig() Config {
	return Config{NgramAnchorThreshold: 3}
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fuzzysearch: invalid config field %s: %s", e.Field, e.Reason)
}

// Validate checks that c is usable, returning a *ConfigError if not.
func (c Config) Validate() error {
	if c.NgramAnchorThreshold < 1 {
		return &ConfigError{Field: "NgramAnchorThreshold", Reason: "must be at least 1"}
	}
	return nil
}

// Select returns the engine for a normalized parameter tuple using
// DefaultConfig.
func Select(n params.Normalized) engine.Engine {
	return SelectWithConfig(n, DefaultConfig())
}

// SelectWithConfig returns the engine for a normalized parameter tuple, per
// spec.md's C8 precedence rules, tuned by cfg:
//
//   - L == 0                    -> exact search (C4)
//   - I == 0 && D == 0          -> substitutions-only search (C5)
//   - L <= min(S, I, D)         -> full Levenshtein search (C6)
//   - otherwise                 -> generic four-parameter search (C7)
func SelectWithConfig(n params.Normalized, cfg Config) engine.Engine {
	switch {
	case n.L == 0:
		return engine.NewExact()
	case n.I == 0 && n.D == 0:
		s := engine.NewSubstitutions(n.S)
		s.NgramAnchorThreshold = cfg.NgramAnchorThreshold
		return s
	case n.L <= min3(n.S, n.I, n.D):
		l := engine.NewLevenshtein(n.L)
		l.NgramAnchorThreshold = cfg.NgramAnchorThreshold
		return l
	default:
		g := engine.NewGeneric(n)
		g.NgramAnchorThreshold = cfg.NgramAnchorThreshold
		return g
	}
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
