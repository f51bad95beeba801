package eval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/flatcfg"
)

// Expand replaces each $[expr] in v with the result of evaluating expr
// against c. Inside an expression, "]" closes it unless it is quoted or
// escaped as \]; \\ is a literal backslash. An expression which is never
// closed is kept as literal text.
//
// Results are rendered as text: strings verbatim, numbers in the shortest
// form that reads back, and sequences comma separated, so that a vector
// expands to something GetVector reads.
func Expand(c *flatcfg.Config, v string, env Env) (string, error) {
	if !strings.Contains(v, "$[") {
		return v, nil
	}
	var out strings.Builder
	for {
		i := strings.Index(v, "$[")
		if i == -1 {
			out.WriteString(v)
			return out.String(), nil
		}
		out.WriteString(v[:i])
		src, n, ok := scanExpr(v[i+2:])
		if !ok {
			out.WriteString(v[i:])
			return out.String(), nil
		}
		res, err := Eval(c, strings.TrimSpace(src), env)
		if err != nil {
			return "", err
		}
		text, err := anyToText(res)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrEval, src, err)
		}
		out.WriteString(text)
		v = v[i+2+n:]
	}
}

// scanExpr returns the expression at the start of v, unescaped, and the
// number of bytes of v it spans including the closing "]".
func scanExpr(v string) (string, int, bool) {
	var b strings.Builder
	var quote byte
	for i := 0; i < len(v); i++ {
		ch := v[i]
		switch {
		case ch == '\\' && i+1 < len(v):
			i++
			if quote != 0 && v[i] != ']' {
				b.WriteByte(ch)
			}
			b.WriteByte(v[i])
		case quote != 0:
			if ch == quote {
				quote = 0
			}
			b.WriteByte(ch)
		case ch == '"' || ch == '\'' || ch == '`':
			quote = ch
			b.WriteByte(ch)
		case ch == ']':
			return b.String(), i + 1, true
		default:
			b.WriteByte(ch)
		}
	}
	return "", 0, false
}

func anyToText(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return flatcfg.DNE, nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case []string:
		return strings.Join(x, ","), nil
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			t, err := anyToText(e)
			if err != nil {
				return "", err
			}
			parts[i] = t
		}
		return strings.Join(parts, ","), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", fmt.Errorf("cannot render %T as text", v)
}

// ExpandAll expands every value of c in place. Expressions see the values
// as they were before any expansion.
func ExpandAll(c *flatcfg.Config, env Env) error {
	view := c.Clone()
	src := view.Map()
	var errs []error
	for _, p := range src.Keys() {
		v := src[p]
		if !strings.Contains(v, "$[") {
			continue
		}
		x, err := Expand(view, v, env)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
			continue
		}
		flatcfg.Set(c, p, x)
	}
	return errors.Join(errs...)
}
