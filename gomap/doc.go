// Package gomap fills Go structs from a flatcfg.Config.
//
// Fields are matched to paths with the cfg struct tag:
//
//	type Histogram struct {
//		Name  string    `cfg:":name"`
//		Title string    `cfg:":title"`
//		Bins  []float64 `cfg:":bins-x,vector"`
//	}
//
//	type Setup struct {
//		Threshold int       `cfg:"Level0:attr1"`
//		Enabled   bool      `cfg:"Level0:attr3,required"`
//		Main      Histogram `cfg:"Histograms.Histogram"`
//		Skip      string    `cfg:"-"`
//	}
//
// A tag names a path relative to the enclosing struct; a name starting with
// ":" addresses an attribute of the enclosing node. Untagged exported
// fields use the field name. Struct fields without a decoder of their own
// are filled recursively below their path, and slice fields are read as
// vectors.
//
// Fields whose path is missing are left as they are, so values set before
// Decode act as defaults, unless the tag says required.
package gomap
