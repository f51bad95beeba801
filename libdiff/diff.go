package libdiff

import (
	"github.com/signadot/flatcfg/flatten"
)

// Change is a difference at one path. From is empty for an Insert and To
// is empty for a Delete.
type Change struct {
	Op   Op
	Path string
	From string
	To   string

	// Spans is the character diff from From to To of a Replace. It is
	// nil when the texts have too little in common for one to be useful.
	Spans []Span
}

// Diff returns the changes taking from to to, in key order.
func Diff(from, to flatten.Map) []Change {
	var res []Change
	for _, p := range mergedKeys(from, to) {
		fv, fok := from[p]
		tv, tok := to[p]
		switch {
		case !fok:
			res = append(res, Change{Op: Insert, Path: p, To: tv})
		case !tok:
			res = append(res, Change{Op: Delete, Path: p, From: fv})
		case fv != tv:
			res = append(res, Change{Op: Replace, Path: p, From: fv, To: tv, Spans: DiffString(fv, tv)})
		}
	}
	return res
}

func mergedKeys(a, b flatten.Map) []string {
	ak, bk := a.Keys(), b.Keys()
	res := make([]string, 0, max(len(ak), len(bk)))
	i, j := 0, 0
	for i < len(ak) && j < len(bk) {
		switch {
		case ak[i] < bk[j]:
			res = append(res, ak[i])
			i++
		case ak[i] > bk[j]:
			res = append(res, bk[j])
			j++
		default:
			res = append(res, ak[i])
			i++
			j++
		}
	}
	res = append(res, ak[i:]...)
	return append(res, bk[j:]...)
}
