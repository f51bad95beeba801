// Package encode renders flattened mappings.
//
// The text rendering is one "[path] = value" line per entry in key order.
// It is meant for people and debugging, not as a serialization format; the
// JSON and YAML renderings are flat objects keyed by path.
//
// # Related Packages
//
//   - github.com/signadot/flatcfg/flatten - the mappings rendered here
//   - github.com/signadot/flatcfg/format - output selection
package encode
