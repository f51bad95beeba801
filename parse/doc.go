// Package parse reads XML, YAML and JSON documents into ir nodes.
//
// # Usage
//
//	// Parse an XML document
//	node, err := parse.Parse([]byte(`<config><a x="1">v</a></config>`))
//
//	// Parse a file, picking the format from its suffix
//	node, err := parse.ParseFile("detector.yaml")
//
//	// Force a format
//	node, err := parse.Parse(data, parse.ParseJSON())
//
// XML elements map onto nodes directly. YAML and JSON documents must be a
// mapping, which plays the role of the root element: keys starting with "@"
// are attributes, the key "#text" is the node content, scalar values become
// content, a sequence of scalars becomes one node whose content is the
// comma separated scalars, and any other sequence becomes repeated sibling
// nodes sharing the key as name.
//
// # Related Packages
//
//   - github.com/signadot/flatcfg/ir - node representation
//   - github.com/signadot/flatcfg/flatten - flatten nodes into a mapping
package parse
