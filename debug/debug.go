// Package debug holds developer tracing switches, read once from the
// environment.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Load    bool
	Flatten bool
	Convert bool
	Eval    bool
	Patch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("FLATCFG_DEBUG_LOAD")
	d.Flatten = boolEnv("FLATCFG_DEBUG_FLATTEN")
	d.Convert = boolEnv("FLATCFG_DEBUG_CONVERT")
	d.Eval = boolEnv("FLATCFG_DEBUG_EVAL")
	d.Patch = boolEnv("FLATCFG_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Flatten() bool {
	return d.Flatten
}
func Convert() bool {
	return d.Convert
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
