// Package format names the document formats flatcfg reads and the
// renderings it writes.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	f = format.FromPath("detector.xml") // XMLFormat
//	f = format.Sniff([]byte(`{"a": 1}`)) // JSONFormat
//
// # Related Packages
//
//   - github.com/signadot/flatcfg/parse - parse documents into ir nodes
//   - github.com/signadot/flatcfg/encode - render flattened mappings
package format
