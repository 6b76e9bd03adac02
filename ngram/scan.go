package ngram

import (
	"bytes"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/fuzzysearch/literal"
	"github.com/coregx/fuzzysearch/prefilter"
)

// Occurrence is one place in the text where a tiling gram was found
// verbatim. GramIdx indexes Tiling.Grams.
type Occurrence struct {
	Start, End int
	GramIdx    int
}

// Scan enumerates every occurrence of every gram in t within text, in
// ascending order of Start. It mirrors coregex's own prefilter-then-
// Aho-Corasick fallback (meta.Compile / meta.buildStrategyEngines): a
// small number of reasonably long grams goes through prefilter.Builder
// (memchr/memmem/Teddy, whichever it selects), which is faster for small
// literal sets; anything selectPrefilter declines (too many grams, or
// grams shorter than 3 bytes) goes straight to an Aho-Corasick automaton
// built from the distinct gram values, same as meta.buildStrategyEngines
// does for its UseAhoCorasick strategy.
func Scan(t Tiling, text []byte) []Occurrence {
	distinct := distinctGrams(t)
	seq := literal.NewSeq(distinct...)

	if pf := prefilter.NewBuilder(seq, nil).Build(); pf != nil {
		return scanWithPrefilter(t, pf, text)
	}
	return scanWithAhoCorasick(t, text)
}

func distinctGrams(t Tiling) []literal.Literal {
	seen := make(map[string]bool, len(t.Grams))
	lits := make([]literal.Literal, 0, len(t.Grams))
	for _, g := range t.Grams {
		k := string(g.Bytes)
		if seen[k] {
			continue
		}
		seen[k] = true
		lits = append(lits, literal.NewLiteral(g.Bytes, true))
	}
	return lits
}

func scanWithPrefilter(t Tiling, pf prefilter.Prefilter, text []byte) []Occurrence {
	var out []Occurrence
	pos := 0
	for pos <= len(text) {
		next := pf.Find(text, pos)
		if next < 0 {
			break
		}
		out = append(out, gramsAt(t, text, next)...)
		pos = next + 1
	}
	return out
}

func scanWithAhoCorasick(t Tiling, text []byte) []Occurrence {
	builder := ahocorasick.NewBuilder()
	for _, g := range distinctGrams(t) {
		builder.AddPattern(g.Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}

	var out []Occurrence
	at := 0
	for at <= len(text) {
		m := auto.Find(text, at)
		if m == nil {
			break
		}
		out = append(out, gramsAt(t, text, m.Start)...)
		at = m.Start + 1
	}
	return out
}

// gramsAt returns every gram whose bytes occur verbatim in text at pos,
// disambiguating the prefilter/automaton's position-only result against
// the tiling's actual gram identities (needed since two grams can share
// identical bytes, and since the scanners above report only positions).
func gramsAt(t Tiling, text []byte, pos int) []Occurrence {
	var occs []Occurrence
	for j, g := range t.Grams {
		end := pos + len(g.Bytes)
		if end > len(text) {
			continue
		}
		if bytes.Equal(text[pos:end], g.Bytes) {
			occs = append(occs, Occurrence{Start: pos, End: end, GramIdx: j})
		}
	}
	return occs
}
