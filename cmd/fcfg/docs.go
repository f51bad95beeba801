package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/flatcfg"
	"github.com/signadot/flatcfg/format"
)

// loadDoc loads arg as a file, as document text with -s, or from stdin for
// "-".
func loadDoc(cfg *MainConfig, arg string) (*flatcfg.Config, error) {
	c := flatcfg.New(cfg.configOpts()...)
	var err error
	switch {
	case cfg.String:
		err = c.Load(arg, true)
	case arg == "-":
		err = c.LoadReader("stdin", os.Stdin)
	default:
		err = c.Load(arg, false)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", docName(cfg, arg), err)
	}
	return c, nil
}

func docName(cfg *MainConfig, arg string) string {
	if cfg.String {
		return "document text"
	}
	return arg
}

// docArgs defaults to stdin.
func docArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// writeValue writes a query result in the output format.
func writeValue(cfg *MainConfig, w io.Writer, v any) error {
	switch cfg.output() {
	case format.JSONOutput:
		d, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return err
	case format.YAMLOutput:
		d, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if vs, ok := v.([]any); ok {
		for _, e := range vs {
			if _, err := fmt.Fprintln(w, e); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(w, v)
	return err
}
