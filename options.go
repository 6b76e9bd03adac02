package fuzzysearch

import (
	"github.com/coregx/fuzzysearch/dispatch"
	"github.com/coregx/fuzzysearch/params"
	"github.com/coregx/fuzzysearch/stream"
)

// Option configures a Find/FindStreaming/FindAny call: the edit-distance
// bounds themselves (at least one of WithMaxSubstitutions, WithMaxInsertions,
// WithMaxDeletions or WithMaxLDist is required) plus the engine/streamer
// tunables dispatch.Config and stream.Config expose.
type Option func(*options)

type options struct {
	p              params.Params
	ngramThreshold int
	windowSize     int
}

func newOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithMaxSubstitutions sets the maximum number of substitutions allowed.
func WithMaxSubstitutions(n int) Option {
	return func(o *options) { o.p.MaxSubstitutions = params.Int(n) }
}

// WithMaxInsertions sets the maximum number of insertions allowed.
func WithMaxInsertions(n int) Option {
	return func(o *options) { o.p.MaxInsertions = params.Int(n) }
}

// WithMaxDeletions sets the maximum number of deletions allowed.
func WithMaxDeletions(n int) Option {
	return func(o *options) { o.p.MaxDeletions = params.Int(n) }
}

// WithMaxLDist sets the maximum overall edit distance allowed.
func WithMaxLDist(n int) Option {
	return func(o *options) { o.p.MaxLDist = params.Int(n) }
}

// WithNgramAnchorThreshold overrides dispatch.DefaultConfig's n-gram
// acceleration threshold (see dispatch.Config.NgramAnchorThreshold).
func WithNgramAnchorThreshold(n int) Option {
	return func(o *options) { o.ngramThreshold = n }
}

// WithWindowSize overrides stream.DefaultConfig's window size. Ignored by
// Find/FindAny, which hold the whole text in memory; only meaningful for
// the streaming entry points.
func WithWindowSize(n int) Option {
	return func(o *options) { o.windowSize = n }
}

func (o options) dispatchConfig() dispatch.Config {
	cfg := dispatch.DefaultConfig()
	if o.ngramThreshold > 0 {
		cfg.NgramAnchorThreshold = o.ngramThreshold
	}
	return cfg
}

func (o options) streamConfig() stream.Config {
	cfg := stream.DefaultConfig()
	if o.windowSize > 0 {
		cfg.WindowSize = o.windowSize
	}
	return cfg
}
