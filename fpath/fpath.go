package fpath

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	NodeDelim = "."
	AttrDelim = ":"
	ZeroIndex = "[0]"
)

// Canonicalize strips all whitespace from p and removes the first "[0]", so
// that a bare path and its explicit zero index address the same entry.
// Canonicalize is idempotent.
func Canonicalize(p string) string {
	p = stripSpace(p)
	if i := strings.Index(p, ZeroIndex); i != -1 {
		p = p[:i] + p[i+len(ZeroIndex):]
	}
	return p
}

func stripSpace(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) == -1 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// StripSpace removes all whitespace from s.
func StripSpace(s string) string {
	return stripSpace(s)
}

// Join appends the node name to parent. An empty parent is the document
// root, which never appears in paths.
func Join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + NodeDelim + name
}

// Attr returns the path of attribute name on the node at p.
func Attr(p, name string) string {
	return p + AttrDelim + name
}

// Index returns p with the sibling index suffix i.
func Index(p string, i int) string {
	return p + "[" + strconv.Itoa(i) + "]"
}

// IsAttr reports whether p addresses an attribute.
func IsAttr(p string) bool {
	return strings.Contains(p, AttrDelim)
}

// IsPrefixChild reports whether key is a child of query under plain prefix
// comparison: key starts with query and is longer. "Foo2" is a prefix child
// of "Foo".
func IsPrefixChild(key, query string) bool {
	return len(key) > len(query) && key[:len(query)] == query
}

// IsSegmentChild is like IsPrefixChild but requires the prefix to end on a
// node boundary, so "Foo.Bar" is a child of "Foo" and "Foo2" is not.
func IsSegmentChild(key, query string) bool {
	if query == "" {
		return key != ""
	}
	return IsPrefixChild(key, query) && key[len(query):len(query)+1] == NodeDelim
}

// Parent returns the path of the node containing p: for an attribute the
// node carrying it, otherwise the path without its last segment.
func Parent(p string) string {
	if i := strings.Index(p, AttrDelim); i != -1 {
		return p[:i]
	}
	i := strings.LastIndex(p, NodeDelim)
	if i == -1 {
		return ""
	}
	return p[:i]
}
