package flatcfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/flatcfg/debug"
	"github.com/signadot/flatcfg/flatten"
	"github.com/signadot/flatcfg/fpath"
)

// Patch applies an RFC 6902 JSON patch to the flattened mapping, seen as a
// JSON object from path to text. Patch pointers name whole paths, so "/" and
// "~" in a path are written "~1" and "~0". Values may be any JSON scalar;
// null stores DNE. Entries that are not valid UTF-8 cannot be patched, nor
// can a patch leave two keys naming the same canonical path. On error c is
// unchanged.
func (c *Config) Patch(d []byte) error {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	c.init()
	for k, v := range c.m {
		if !utf8.ValidString(k) || !utf8.ValidString(v) {
			return fmt.Errorf("%w: entry %q is not valid UTF-8", ErrPatch, k)
		}
	}
	doc, err := json.Marshal(map[string]string(c.m))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patch %s: %d ops\n", c.source, len(ops))
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	dec := json.NewDecoder(bytes.NewReader(out))
	dec.UseNumber()
	var res map[string]any
	if err := dec.Decode(&res); err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	m := make(flatten.Map, len(res))
	for k, v := range res {
		text, err := patchText(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPatch, k, err)
		}
		p := fpath.Canonicalize(k)
		if _, dup := m[p]; dup {
			return fmt.Errorf("%w: more than one key names %s", ErrPatch, p)
		}
		m[p] = text
	}
	if debug.Patch() {
		debug.LogAny(map[string]string(m))
	}
	c.m = m
	return nil
}

func patchText(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return DNE, nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	}
	return "", fmt.Errorf("value %v is not a scalar", v)
}
