package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Span is a run of text which is kept, inserted or deleted.
type Span struct {
	Op   Op
	Text string
}

// DiffString returns the spans taking from to to. It returns nil if the
// texts are equal or if more than half of the shorter one changes.
func DiffString(from, to string) []Span {
	if from == to {
		return nil
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffSize := 0
	res := make([]Span, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			res = append(res, Span{Op: Insert, Text: diff.Text})
			diffSize += len(diff.Text)
		case diffpatch.DiffDelete:
			res = append(res, Span{Op: Delete, Text: diff.Text})
			diffSize += len(diff.Text)
		case diffpatch.DiffEqual:
			res = append(res, Span{Op: Equal, Text: diff.Text})
		}
	}
	if diffSize > min(len(from), len(to))/2 {
		return nil
	}
	return res
}
