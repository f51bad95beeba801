package parse

import (
	"github.com/signadot/flatcfg/format"
)

type parseOpts struct {
	format    format.Format
	formatSet bool
	keepSpace bool
}

type ParseOption func(*parseOpts)

func ParseXML() ParseOption {
	return ParseFormat(format.XMLFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.formatSet = true
	}
}

// KeepSpace keeps leading and trailing whitespace of XML element content.
// Content made only of whitespace is still treated as absent.
func KeepSpace(v bool) ParseOption {
	return func(o *parseOpts) { o.keepSpace = v }
}

// GetFormat returns the format forced by opts, if any.
func GetFormat(opts ...ParseOption) (format.Format, bool) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.format, pOpts.formatSet
}
