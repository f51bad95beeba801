package ir

import (
	"strconv"
	"strings"
)

// Path gives a human readable location of n within its document, for error
// messages and debug output. The root is "$"; a node which is not the first
// child of its parent with its name carries its sibling index.
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	prefix := n.Parent.Path() + "."
	name := pathString(n.Name)
	i := n.siblingIndex()
	if i == 0 {
		return prefix + name
	}
	return prefix + name + "[" + strconv.Itoa(i) + "]"
}

func (n *Node) siblingIndex() int {
	i := 0
	for _, c := range n.Parent.Children[:n.ParentIndex] {
		if c.Name == n.Name {
			i++
		}
	}
	return i
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.:$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}
