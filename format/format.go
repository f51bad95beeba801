package format

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an input document format.
type Format int

const (
	XMLFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"x":    XMLFormat,
		"xml":  XMLFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case XMLFormat:
		return []byte("xml"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsXML() bool  { return f == XMLFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case XMLFormat:
		return ".xml"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{XMLFormat, YAMLFormat, JSONFormat}
}

// FromPath picks a format from a file name suffix. Unknown suffixes are
// read as XML.
func FromPath(p string) Format {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return YAMLFormat
	case ".json":
		return JSONFormat
	default:
		return XMLFormat
	}
}

// Sniff guesses the format of literal document text from its first
// non-blank byte.
func Sniff(d []byte) Format {
	d = bytes.TrimLeft(d, " \t\r\n\ufeff")
	if len(d) == 0 {
		return XMLFormat
	}
	switch d[0] {
	case '<':
		return XMLFormat
	case '{', '[':
		return JSONFormat
	default:
		return YAMLFormat
	}
}

// Output is a rendering of a flattened mapping.
type Output int

const (
	TextOutput Output = iota
	JSONOutput
	YAMLOutput
)

func ParseOutput(v string) (Output, error) {
	o, ok := map[string]Output{
		"t":    TextOutput,
		"text": TextOutput,
		"j":    JSONOutput,
		"json": JSONOutput,
		"y":    YAMLOutput,
		"yaml": YAMLOutput,
	}[strings.ToLower(v)]
	if ok {
		return o, nil
	}
	return 0, fmt.Errorf("%w: output %q", ErrBadFormat, v)
}

func (o Output) String() string {
	switch o {
	case TextOutput:
		return "text"
	case JSONOutput:
		return "json"
	case YAMLOutput:
		return "yaml"
	default:
		return fmt.Sprintf("<err: %d is not an output>", int(o))
	}
}
