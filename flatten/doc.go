// Package flatten turns a node tree into a flat mapping from path to text.
//
// Flattening walks the tree depth first, preorder, starting with the
// children of the root; the root itself never appears in a path. Each node
// is stored under its path with its text content, or DNE when it has none,
// and each attribute under the node path joined with ":" and the attribute
// name.
//
// When a node's path is already taken by an earlier sibling of the same
// name, the node gets the lowest free index suffix starting at 1:
//
//	<Parent><Item>a</Item><Item>b</Item><Item>c</Item></Parent>
//
// flattens to
//
//	Parent         = <DNE/>
//	Parent.Item    = a
//	Parent.Item[1] = b
//	Parent.Item[2] = c
package flatten
