// Package libdiff compares flattened configurations.
//
// A diff is a list of Changes in key order. Changed values carry a
// character level diff of the text, so that small edits to long values
// show only what moved. Diffs can be reversed and applied to a mapping.
package libdiff
