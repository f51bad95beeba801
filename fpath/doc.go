// Package fpath implements the path syntax of flattened documents.
//
// A path is a sequence of node names joined by ".", optionally followed by
// an attribute name joined by ":". A node name may carry a sibling index
// suffix "[i]" with i >= 1 when several siblings share the name; the first
// such sibling is addressed by the bare name or, equivalently, with "[0]".
//
//	Level0.Level1.Level2:name
//	Histograms.Histogram[2]:bins-x
//
// Whitespace anywhere in a path is ignored.
package fpath
