// Package stream implements component C9: running an engine over input
// too large to hold in memory, by sliding a window across it that always
// retains enough trailing overlap to guarantee no match is split across a
// window boundary.
//
// The overlap size is engine.ExtraItems(len(pattern)) elements beyond the
// exact-match baseline of len(pattern)-1, per spec.md §4.9 (E = m - 1 +
// engine.extra_items_for_chunked_search). A match is reported from the
// window in which it starts before that retained overlap; a match starting
// inside the overlap is skipped there and re-derived, in full, from the
// next window, which begins where the overlap begins.
package stream

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/coregx/fuzzysearch/engine"
	"github.com/coregx/fuzzysearch/match"
	"github.com/coregx/fuzzysearch/seq"
)

// defaultWindowSize mirrors coregex's chunked-search defaults: large
// enough to amortize per-window overhead, small enough to bound memory.
const defaultWindowSize = 1 << 20

// Config holds the streamer's tunables, following the same
// Config/DefaultConfig/Validate shape as params and dispatch.
type Config struct {
	// WindowSize is the target number of elements held in memory per
	// window, before accounting for the engine's required overlap. It is
	// silently raised to the minimum workable size if too small.
	WindowSize int
}

// DefaultConfig returns a 1 MiB window, coregex's own chunked-search default.
func DefaultConfig() Config {
	return Config{WindowSize: defaultWindowSize}
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fuzzysearch: invalid config field %s: %s", e.Field, e.Reason)
}

// Validate checks that c is usable.
func (c Config) Validate() error {
	if c.WindowSize < 1 {
		return &ConfigError{Field: "WindowSize", Reason: "must be positive"}
	}
	return nil
}

// ByteReader is the chunk source a ByteStreamer needs: the same shape as
// io.Reader. Every io.Reader already satisfies ByteReader without change,
// since the method signatures are identical.
type ByteReader interface {
	Read(buf []byte) (n int, err error)
}

// ElemReader is the chunk source an ElemStreamer[T] needs: the same shape
// as ByteReader, generalized to any element type.
type ElemReader[T any] interface {
	Read(buf []T) (n int, err error)
}

// chunkSource is the shape runStream actually needs; ByteReader and every
// ElemReader[T] already satisfy it structurally.
type chunkSource[T any] interface {
	Read(buf []T) (n int, err error)
}

// ByteStreamer runs an engine over a byte stream (an io.Reader) in bounded
// memory.
type ByteStreamer struct {
	pattern []byte
	eng     engine.Engine
	window  int
}

// NewByteStreamer builds a streamer for pattern using eng, with window
// sizing from cfg.
func NewByteStreamer(pattern []byte, eng engine.Engine, cfg Config) (*ByteStreamer, error) {
	w, err := resolveWindow(len(pattern), eng, cfg)
	if err != nil {
		return nil, err
	}
	return &ByteStreamer{pattern: pattern, eng: eng, window: w}, nil
}

// Search scans r and returns an iterator over every match found, in
// ascending Start order, plus a function to call after the iterator is
// fully drained (or stopped early) that reports any read or engine error
// encountered, mirroring bufio.Scanner's Err() pattern.
func (s *ByteStreamer) Search(r ByteReader) (iter.Seq[match.Match], func() error) {
	return runStream(s.pattern, s.eng, s.window, r, func(b []byte) seq.View { return seq.NewByteView(b) })
}

// ElemStreamer runs an engine over a stream of arbitrary comparable
// elements in bounded memory.
type ElemStreamer[T comparable] struct {
	pattern []T
	eng     engine.Engine
	window  int
}

// NewElemStreamer builds a streamer for pattern using eng, with window
// sizing from cfg.
func NewElemStreamer[T comparable](pattern []T, eng engine.Engine, cfg Config) (*ElemStreamer[T], error) {
	w, err := resolveWindow(len(pattern), eng, cfg)
	if err != nil {
		return nil, err
	}
	return &ElemStreamer[T]{pattern: pattern, eng: eng, window: w}, nil
}

// Search scans r and returns an iterator over every match found, the same
// way ByteStreamer.Search does.
func (s *ElemStreamer[T]) Search(r ElemReader[T]) (iter.Seq[match.Match], func() error) {
	return runStream(s.pattern, s.eng, s.window, r, func(e []T) seq.View { return seq.NewElemView(e) })
}

func resolveWindow(patternLen int, eng engine.Engine, cfg Config) (int, error) {
	if patternLen == 0 {
		return 0, seq.ErrEmptyPattern
	}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	extra := eng.ExtraItems(patternLen)
	minWindow := patternLen - 1 + extra + 1
	if cfg.WindowSize > minWindow {
		return cfg.WindowSize, nil
	}
	return minWindow, nil
}

// runStream implements the sliding-window protocol shared by ByteStreamer
// and ElemStreamer[T]. makeView adapts a raw []T chunk into the seq.View
// the engine expects (ByteView for bytes, ElemView[T] otherwise).
func runStream[T any](pattern []T, eng engine.Engine, window int, r chunkSource[T], makeView func([]T) seq.View) (iter.Seq[match.Match], func() error) {
	extra := len(pattern) - 1 + eng.ExtraItems(len(pattern))
	pv := makeView(pattern)
	var finalErr error

	it := func(yield func(match.Match) bool) {
		var carry []T
		base := 0
		buf := make([]T, window)

		for {
			copy(buf, carry)
			n, err := readFull(r, buf[len(carry):])
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

			raw, serr := eng.SearchRaw(pv, makeView(winSlice))
			if serr != nil {
				finalErr = serr
				return
			}
			consolidated := match.Consolidate(raw)

			carryStart := total - extra
			if carryStart < 0 {
				carryStart = 0
			}

			for _, m := range consolidated {
				if !eof && m.Start >= carryStart {
					continue
				}
				abs := match.New(base+m.Start, base+m.End, m.Dist, m.Matched)
				if !yield(abs) {
					return
				}
			}

			if eof {
				return
			}

			carry = append([]T(nil), winSlice[carryStart:]...)
			base += carryStart
		}
	}
	return it, func() error { return finalErr }
}

// readFull fills buf completely unless the reader runs out first,
// matching io.ReadFull's contract without importing it for a generic T.
func readFull[T any](r chunkSource[T], buf []T) (int, error) {
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
