package encode

import (
	"strings"

	"github.com/signadot/flatcfg/flatten"
	"github.com/signadot/flatcfg/fpath"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NodeColor ColorAttr = iota
	AttrColor
	IndexColor
	SepColor
	ValueColor
	DNEColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			NodeColor:  color.RGB(128, 168, 196).SprintfFunc(),
			AttrColor:  color.RGB(196, 96, 16).SprintfFunc(),
			IndexColor: color.RGB(168, 0, 196).SprintfFunc(),
			SepColor:   color.RGB(255, 0, 196).SprintfFunc(),
			ValueColor: color.RGB(8, 196, 16).SprintfFunc(),
			DNEColor:   color.RGB(96, 96, 96).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

// Path colors the node segments, index suffixes, delimiters and attribute
// name of p separately.
func (c *Colors) Path(p string) string {
	node, attr, isAttr := strings.Cut(p, fpath.AttrDelim)
	var b strings.Builder
	for i, seg := range strings.Split(node, fpath.NodeDelim) {
		if i > 0 {
			b.WriteString(c.Color(SepColor, fpath.NodeDelim))
		}
		name, idx, hasIdx := strings.Cut(seg, "[")
		b.WriteString(c.Color(NodeColor, name))
		if hasIdx {
			b.WriteString(c.Color(IndexColor, "["+idx))
		}
	}
	if isAttr {
		b.WriteString(c.Color(SepColor, fpath.AttrDelim))
		b.WriteString(c.Color(AttrColor, attr))
	}
	return b.String()
}

func (c *Colors) Value(v string) string {
	if v == flatten.DNE {
		return c.Color(DNEColor, v)
	}
	return c.Color(ValueColor, v)
}
