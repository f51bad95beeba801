package libdiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/flatcfg/flatten"
)

var ErrConflict = errors.New("conflict")

// PatchString applies spans to text. The kept and deleted spans must
// match text exactly.
func PatchString(text string, spans []Span) (string, error) {
	var b strings.Builder
	rest := text
	for _, s := range spans {
		switch s.Op {
		case Insert:
			b.WriteString(s.Text)
		case Equal, Delete:
			if !strings.HasPrefix(rest, s.Text) {
				return "", fmt.Errorf("%w: unexpected text %q, expected %q", ErrConflict, rest, s.Text)
			}
			rest = rest[len(s.Text):]
			if s.Op == Equal {
				b.WriteString(s.Text)
			}
		default:
			return "", fmt.Errorf("invalid span op %s", s.Op)
		}
	}
	if rest != "" {
		return "", fmt.Errorf("%w: trailing text %q", ErrConflict, rest)
	}
	return b.String(), nil
}

// Apply makes the changes to m. Each change must find m as the diff saw
// its source; otherwise Apply stops with ErrConflict, leaving the changes
// before it applied.
func Apply(m flatten.Map, changes []Change) error {
	for i := range changes {
		c := &changes[i]
		cur, ok := m[c.Path]
		switch c.Op {
		case Insert:
			if ok {
				return fmt.Errorf("%w: insert at existing %s", ErrConflict, c.Path)
			}
			m[c.Path] = c.To
		case Delete:
			if !ok || cur != c.From {
				return fmt.Errorf("%w: delete of %s: have %q, want %q", ErrConflict, c.Path, cur, c.From)
			}
			delete(m, c.Path)
		case Replace:
			if !ok {
				return fmt.Errorf("%w: replace of missing %s", ErrConflict, c.Path)
			}
			if c.Spans == nil {
				if cur != c.From {
					return fmt.Errorf("%w: replace of %s: have %q, want %q", ErrConflict, c.Path, cur, c.From)
				}
				m[c.Path] = c.To
				continue
			}
			v, err := PatchString(cur, c.Spans)
			if err != nil {
				return fmt.Errorf("%s: %w", c.Path, err)
			}
			m[c.Path] = v
		default:
			return fmt.Errorf("invalid change op %s at %s", c.Op, c.Path)
		}
	}
	return nil
}
