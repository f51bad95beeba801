package encode

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/flatcfg/flatten"
	"github.com/signadot/flatcfg/format"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	output format.Output
	colors *Colors
	indent int
}

func Encode(m flatten.Map, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch es.output {
	case format.TextOutput:
		return encodeText(m, w, es)
	case format.JSONOutput:
		return encodeJSON(m, w, es)
	case format.YAMLOutput:
		return encodeYAML(m, w)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.output)
	}
}

func encodeText(m flatten.Map, w io.Writer, es *EncState) error {
	bw := bufio.NewWriter(w)
	for _, k := range m.Keys() {
		if err := writeLine(bw, k, m[k], es.colors); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeLine(w io.Writer, k, v string, c *Colors) error {
	if c == nil {
		_, err := fmt.Fprintf(w, "[%s] = %s\n", k, v)
		return err
	}
	_, err := fmt.Fprintf(w, "%s%s%s %s %s\n",
		c.Color(SepColor, "["),
		c.Path(k),
		c.Color(SepColor, "]"),
		c.Color(SepColor, "="),
		c.Value(v))
	return err
}

func encodeJSON(m flatten.Map, w io.Writer, es *EncState) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if es.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", es.indent))
	}
	return enc.Encode(map[string]string(m))
}

func encodeYAML(m flatten.Map, w io.Writer) error {
	keys := m.Keys()
	ms := make(yaml.MapSlice, len(keys))
	for i, k := range keys {
		ms[i] = yaml.MapItem{Key: k, Value: m[k]}
	}
	d, err := yaml.Marshal(ms)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
