package libdiff

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Format writes one line per change:
//
//   - [path] = value
//   - [path] = value
//     ~ [path] = old -> new
//
// With inline set, a Replace with spans is written with its edits marked in
// place, as in "~ [path] = 1{-0-}{+5+}ms".
func Format(w io.Writer, changes []Change, inline bool) error {
	bw := bufio.NewWriter(w)
	for i := range changes {
		c := &changes[i]
		switch c.Op {
		case Insert:
			fmt.Fprintf(bw, "%s [%s] = %s\n", c.Op, c.Path, c.To)
		case Delete:
			fmt.Fprintf(bw, "%s [%s] = %s\n", c.Op, c.Path, c.From)
		case Replace:
			if inline && c.Spans != nil {
				fmt.Fprintf(bw, "%s [%s] = %s\n", c.Op, c.Path, InlineSpans(c.Spans))
				continue
			}
			fmt.Fprintf(bw, "%s [%s] = %s -> %s\n", c.Op, c.Path, c.From, c.To)
		}
	}
	return bw.Flush()
}

func InlineSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Op {
		case Insert:
			b.WriteString("{+" + s.Text + "+}")
		case Delete:
			b.WriteString("{-" + s.Text + "-}")
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
