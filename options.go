package flatcfg

import (
	"log/slog"

	"github.com/signadot/flatcfg/format"
	"github.com/signadot/flatcfg/parse"
)

type Option func(*Config)

// WithLogger sets the logger receiving load failures (Warn), loads and
// conversion failures (Debug). The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.log = l }
}

// WithFormat forces the document format instead of taking it from the
// file suffix or the document text.
func WithFormat(f format.Format) Option {
	return func(c *Config) {
		c.parseOpts = append(c.parseOpts, parse.ParseFormat(f))
	}
}

func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(c *Config) {
		c.parseOpts = append(c.parseOpts, opts...)
	}
}

// SegmentChildren makes ChildrenOf match whole path segments: with it,
// "Foo2" is no longer a child of "Foo". Without it, children are matched
// by plain prefix, which existing configurations may depend on.
func SegmentChildren(v bool) Option {
	return func(c *Config) { c.segmentChildren = v }
}
