// Package flatcfg reads hierarchical configuration documents as flat,
// path addressed, typed key/value pairs.
//
// A document (XML by default, YAML or JSON on request) is parsed once and
// flattened into a mapping from path to text. Paths join node names with
// "." and attribute names with ":"; repeated siblings get index suffixes:
//
//	<config>
//	  <Level0 attr1="3">
//	    <Item>a</Item>
//	    <Item>b</Item>
//	  </Level0>
//	</config>
//
// gives the paths Level0, Level0:attr1, Level0.Item and Level0.Item[1].
// Level0.Item[0] addresses the same entry as Level0.Item, and whitespace in
// paths is ignored.
//
// # Usage
//
//	cfg := flatcfg.Open("config.xml")
//	n := flatcfg.Get(cfg, "Level0:attr1", 0)       // 3
//	ok := flatcfg.Get(cfg, "Level0:enabled", true) // default when absent
//	bins := flatcfg.GetVector(cfg, "H:bins-x", []float64{1, 0, 1})
//	for _, p := range cfg.ChildrenOf("Histograms") {
//		...
//	}
//
// Missing paths are not errors: Get and GetVector return the supplied
// default. A document which fails to parse leaves the configuration empty
// and sets a sticky flag reported by ParseFailed. TryGet and TryGetVector
// report missing paths and malformed values for callers that need to tell
// them apart.
//
// Conversions are looked up by type. Strings are returned verbatim, bools
// accept exactly "true" and "false" and otherwise the truth of an integer,
// and numbers use the usual Go parsing. New types are supported with
// RegisterDecoder and RegisterEncoder; a decoder receives the Config and the
// path being read so it can assemble a value from neighbouring paths.
//
// A Config is not safe for concurrent use when any goroutine modifies it.
//
// # Related Packages
//
//   - github.com/signadot/flatcfg/parse - document parsing
//   - github.com/signadot/flatcfg/flatten - the flattening algorithm
//   - github.com/signadot/flatcfg/fpath - path syntax
//   - github.com/signadot/flatcfg/gomap - struct decoding
//   - github.com/signadot/flatcfg/eval - expressions over a Config
package flatcfg
