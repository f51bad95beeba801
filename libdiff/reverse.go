package libdiff

// Reverse returns the changes undoing changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{
			Op:   c.Op.Reverse(),
			Path: c.Path,
			From: c.To,
			To:   c.From,
		}
		if c.Spans != nil {
			r.Spans = make([]Span, len(c.Spans))
			for j, s := range c.Spans {
				r.Spans[j] = Span{Op: s.Op.Reverse(), Text: s.Text}
			}
		}
		res[i] = r
	}
	return res
}
