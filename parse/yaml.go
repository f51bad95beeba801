package parse

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/flatcfg/fpath"
	"github.com/signadot/flatcfg/ir"

	"github.com/goccy/go-yaml"
)

const (
	attrPrefix = "@"
	textKey    = "#text"
	listSep    = ","
)

// parseYAML also serves JSON, which goccy/go-yaml reads as YAML.
func parseYAML(d []byte, _ *parseOpts) (*ir.Node, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(d, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc == nil {
		return nil, ErrEmpty
	}
	ms, ok := asMapSlice(doc)
	if !ok {
		return nil, fmt.Errorf("%w: document must be a mapping, got %T", ErrRoot, doc)
	}
	root := ir.NewNode("")
	if err := fillMapping(root, ms); err != nil {
		return nil, err
	}
	return root, nil
}

func asMapSlice(v any) (yaml.MapSlice, bool) {
	switch x := v.(type) {
	case yaml.MapSlice:
		return x, true
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		res := make(yaml.MapSlice, len(keys))
		for i, k := range keys {
			res[i] = yaml.MapItem{Key: k, Value: x[k]}
		}
		return res, true
	default:
		return nil, false
	}
}

func fillMapping(node *ir.Node, ms yaml.MapSlice) error {
	for _, item := range ms {
		key, ok := scalarText(item.Key)
		if !ok || key == "" {
			return fmt.Errorf("%w: empty key under %s", ErrParse, node.Path())
		}
		switch {
		case key == textKey:
			s, ok, err := leafText(item.Value)
			if err != nil {
				return fmt.Errorf("%w: %s of %s: %w", ErrParse, textKey, node.Path(), err)
			}
			if ok {
				node.WithContent(s)
			}
		case strings.HasPrefix(key, attrPrefix):
			name, err := keyName(key[len(attrPrefix):])
			if err != nil {
				return fmt.Errorf("%w: attribute of %s: %w", ErrParse, node.Path(), err)
			}
			s, ok, err := leafText(item.Value)
			if err != nil {
				return fmt.Errorf("%w: attribute %s of %s: %w", ErrParse, name, node.Path(), err)
			}
			if ok {
				node.WithAttr(name, s)
			} else {
				node.WithNullAttr(name)
			}
		default:
			name, err := keyName(key)
			if err != nil {
				return fmt.Errorf("%w: under %s: %w", ErrParse, node.Path(), err)
			}
			if err := appendValue(node, name, item.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// keyName gives the node or attribute name for a mapping key. Paths are
// queried without whitespace and without a "[0]", so names keep neither.
func keyName(key string) (string, error) {
	name := fpath.StripSpace(key)
	switch {
	case name == "":
		return "", fmt.Errorf("blank key %q", key)
	case strings.Contains(name, fpath.ZeroIndex):
		return "", fmt.Errorf("key %q contains %s", key, fpath.ZeroIndex)
	}
	return name, nil
}

func appendValue(parent *ir.Node, name string, v any) error {
	if ms, ok := asMapSlice(v); ok {
		return fillMapping(parent.Append(ir.NewNode(name)), ms)
	}
	if xs, ok := v.([]any); ok {
		if s, ok := joinScalars(xs); ok {
			parent.Append(ir.NewNode(name).WithContent(s))
			return nil
		}
		for _, x := range xs {
			if err := appendValue(parent, name, x); err != nil {
				return err
			}
		}
		return nil
	}
	child := parent.Append(ir.NewNode(name))
	if s, ok := scalarText(v); ok {
		child.WithContent(s)
	}
	return nil
}

// leafText gives the text of a scalar or a sequence of scalars. ok is false
// for null.
func leafText(v any) (string, bool, error) {
	if xs, isSeq := v.([]any); isSeq {
		s, ok := joinScalars(xs)
		if !ok {
			return "", false, fmt.Errorf("sequence of non scalars")
		}
		return s, true, nil
	}
	if _, isMap := asMapSlice(v); isMap {
		return "", false, fmt.Errorf("mapping where a scalar is expected")
	}
	s, ok := scalarText(v)
	return s, ok, nil
}

func joinScalars(xs []any) (string, bool) {
	parts := make([]string, len(xs))
	for i, x := range xs {
		if x == nil {
			continue
		}
		s, ok := scalarText(x)
		if !ok {
			return "", false
		}
		parts[i] = s
	}
	return strings.Join(parts, listSep), true
}

func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case yaml.MapSlice, map[string]any, []any:
		return "", false
	default:
		return fmt.Sprint(x), true
	}
}
