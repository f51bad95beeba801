package parse

import (
	"fmt"
	"os"

	"github.com/signadot/flatcfg/format"
	"github.com/signadot/flatcfg/ir"
)

// Parse parses d into a node tree and returns its root. Without a format
// option the format is sniffed from the content.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if !pOpts.formatSet {
		pOpts.format = format.Sniff(d)
	}
	switch pOpts.format {
	case format.XMLFormat:
		return parseXML(d, pOpts)
	case format.YAMLFormat, format.JSONFormat:
		return parseYAML(d, pOpts)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, pOpts.format)
	}
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseFile reads and parses the file at path. Without a format option the
// format is taken from the file suffix.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, ok := GetFormat(opts...); !ok {
		opts = append([]ParseOption{ParseFormat(format.FromPath(path))}, opts...)
	}
	node, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}
