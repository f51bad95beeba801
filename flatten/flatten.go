package flatten

import (
	"github.com/signadot/flatcfg/debug"
	"github.com/signadot/flatcfg/fpath"
	"github.com/signadot/flatcfg/ir"
)

// Flatten returns the mapping of the tree rooted at root. A nil root gives
// an empty mapping.
func Flatten(root *ir.Node) Map {
	m := Map{}
	Into(m, root)
	return m
}

// Into adds the entries of the tree rooted at root to m. Paths that collide
// with keys already in m are disambiguated against them.
func Into(m Map, root *ir.Node) {
	if root == nil {
		return
	}
	for _, child := range root.Children {
		flattenNode(m, child, "")
	}
}

func flattenNode(m Map, node *ir.Node, parent string) {
	p := fpath.Join(parent, node.Name)
	if m.Has(p) {
		p = fpath.Index(p, nextIndex(m, p))
	}
	m[p] = content(node.Content)
	if debug.Flatten() {
		debug.Logf("flatten %s -> %s\n", node.Path(), p)
	}

	for _, a := range node.Attrs {
		m[fpath.Attr(p, a.Name)] = content(a.Value)
	}
	for _, child := range node.Children {
		flattenNode(m, child, p)
	}
}

// nextIndex returns the lowest i >= 1 such that p[i] is not in m. Index 0
// is the bare path itself.
func nextIndex(m Map, p string) int {
	i := 1
	for m.Has(fpath.Index(p, i)) {
		i++
	}
	return i
}

func content(s *string) string {
	if s == nil {
		return DNE
	}
	return *s
}
