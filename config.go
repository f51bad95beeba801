package flatcfg

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/signadot/flatcfg/debug"
	"github.com/signadot/flatcfg/encode"
	"github.com/signadot/flatcfg/flatten"
	"github.com/signadot/flatcfg/fpath"
	"github.com/signadot/flatcfg/ir"
	"github.com/signadot/flatcfg/parse"
)

// DNE is the value stored for nodes and attributes without text.
const DNE = flatten.DNE

const stringSource = "<string>"

// Config is a flattened document with typed accessors.
type Config struct {
	m      flatten.Map
	source string

	parseFailed bool
	err         error

	log             *slog.Logger
	parseOpts       []parse.ParseOption
	segmentChildren bool
}

// New returns an empty Config; use Load to read a document. The zero
// Config is also ready to use.
func New(opts ...Option) *Config {
	c := &Config{}
	for _, o := range opts {
		o(c)
	}
	c.init()
	return c
}

func (c *Config) init() {
	if c.m == nil {
		c.m = flatten.Map{}
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
}

// Open returns a Config loaded from the file at filename. Failures are
// recorded as with Load.
func Open(filename string, opts ...Option) *Config {
	c := New(opts...)
	c.Load(filename, false)
	return c
}

// Canonicalize returns p without whitespace and without its first "[0]".
func Canonicalize(p string) string {
	return fpath.Canonicalize(p)
}

// Load replaces the contents of c with the document at source, or, when
// asString is true, with the document text source itself. If the document
// cannot be read or parsed, c is left empty and ParseFailed reports true
// from then on. The returned error is the same failure, for callers that
// prefer to handle it directly.
func (c *Config) Load(source string, asString bool) error {
	if asString {
		return c.load(stringSource, func() (*ir.Node, error) {
			return parse.ParseString(source, c.parseOpts...)
		})
	}
	return c.load(source, func() (*ir.Node, error) {
		return parse.ParseFile(source, c.parseOpts...)
	})
}

// LoadBytes is Load for document text held in memory; name identifies the
// document in logs and errors.
func (c *Config) LoadBytes(name string, d []byte) error {
	return c.load(name, func() (*ir.Node, error) {
		return parse.Parse(d, c.parseOpts...)
	})
}

// LoadReader reads r to the end and loads it as with LoadBytes.
func (c *Config) LoadReader(name string, r io.Reader) error {
	d, err := io.ReadAll(r)
	if err != nil {
		c.m.Clear()
		c.source = name
		return c.fail(name, fmt.Errorf("error reading: %w", err))
	}
	return c.LoadBytes(name, d)
}

func (c *Config) load(name string, parseFunc func() (*ir.Node, error)) error {
	c.init()
	c.m.Clear()
	c.source = name
	root, err := parseFunc()
	if err != nil {
		return c.fail(name, err)
	}
	flatten.Into(c.m, root)
	c.log.Debug("loaded document", "source", name, "entries", len(c.m))
	if debug.Load() {
		debug.Logf("load %s: %d entries\n", name, len(c.m))
	}
	return nil
}

func (c *Config) fail(name string, err error) error {
	c.init()
	c.parseFailed = true
	c.err = err
	c.log.Warn("unable to load document", "source", name, "error", err)
	return err
}

// ParseFailed reports whether any load into c has failed. The flag is
// sticky: a later successful load does not clear it.
func (c *Config) ParseFailed() bool {
	return c.parseFailed
}

// Err returns the most recent load failure, or nil.
func (c *Config) Err() error {
	return c.err
}

// Source names the last document loaded.
func (c *Config) Source() string {
	return c.source
}

// Exists reports whether p addresses a node or attribute.
func (c *Config) Exists(p string) bool {
	return c.m.Has(fpath.Canonicalize(p))
}

// Raw returns the stored text at p.
func (c *Config) Raw(p string) (string, bool) {
	v, ok := c.m[fpath.Canonicalize(p)]
	return v, ok
}

// Delete removes the entry at p, reporting whether it was present.
func (c *Config) Delete(p string) bool {
	p = fpath.Canonicalize(p)
	if !c.m.Has(p) {
		return false
	}
	delete(c.m, p)
	return true
}

// ChildrenOf returns the node paths below p in key order. Attributes are
// never included, nor is p itself. Unless SegmentChildren is set, any key
// starting with p counts, so all descendants are listed, as are siblings
// such as p[1] and nodes whose name merely extends the last segment of p.
func (c *Config) ChildrenOf(p string) []string {
	q := fpath.Canonicalize(p)
	isChild := fpath.IsPrefixChild
	if c.segmentChildren {
		isChild = fpath.IsSegmentChild
	}
	var res []string
	for _, k := range c.m.Keys() {
		if fpath.IsAttr(k) || !isChild(k, q) {
			continue
		}
		res = append(res, k)
	}
	return res
}

// Clone returns a copy of c with its own mapping.
func (c *Config) Clone() *Config {
	res := *c
	res.m = c.m.Clone()
	res.parseOpts = slices.Clone(c.parseOpts)
	return &res
}

// Keys returns every path in c in key order.
func (c *Config) Keys() []string {
	return c.m.Keys()
}

// Len returns the number of entries in c.
func (c *Config) Len() int {
	return len(c.m)
}

// Map returns a copy of the flattened mapping.
func (c *Config) Map() flatten.Map {
	return c.m.Clone()
}

// Dump renders every entry as a "[path] = value" line, in key order.
func (c *Config) Dump() string {
	return encode.MustString(c.m)
}

// Encode renders the mapping to w.
func (c *Config) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(c.m, w, opts...)
}
