// Package eval evaluates expr-lang expressions against a flatcfg.Config.
//
// Expressions see the configuration through functions:
//
//	get(path)          text at path, error if missing
//	getOr(path, dv)    text at path, or dv
//	exists(path)       whether path exists
//	children(path)     ChildrenOf(path)
//	vector(path)       the comma separated elements at path
//	getInt(path)       the value at path as an int
//	getFloat(path)     ... as a float
//	getBool(path)      ... as a bool
//	whereami()         the source of the configuration
//	getenv(name)       an environment variable
//
// Values can also refer to other values with $[expr], see Expand.
//
// # Related Packages
//
//   - github.com/expr-lang/expr - expression language
package eval
