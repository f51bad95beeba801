// Package ir provides the node tree that parsers produce and the
// flattener consumes.
//
// A Node has a name, optional text content, ordered attributes and ordered
// children. That is the whole contract: parsers for XML, YAML and JSON all
// reduce their documents to this shape, and nothing downstream looks at the
// source syntax.
//
// # Usage
//
//	root := ir.NewNode("config")
//	lvl := root.Append(ir.NewNode("Level0").WithAttr("attr1", "3"))
//	lvl.Append(ir.NewNode("Level1").WithContent("hello"))
//
// # Related Packages
//
//   - github.com/signadot/flatcfg/parse - build nodes from documents
//   - github.com/signadot/flatcfg/flatten - flatten nodes into a mapping
package ir
