package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/flatcfg"
	"github.com/signadot/flatcfg/encode"
	"github.com/signadot/flatcfg/format"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	String  bool `cli:"name=s desc='document arguments are document text, not files'"`
	Segment bool `cli:"name=segment desc='children match whole path segments'"`
	Verbose bool `cli:"name=v desc='log loads and conversion failures'"`

	X bool `cli:"name=x aliases=xml desc='read xml'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat  *format.Format
	OutFormat *format.Output

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) inFmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.InFormat = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		o, err := format.ParseOutput(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = &o
		return o, nil
	})
}

func (cfg *MainConfig) configOpts() []flatcfg.Option {
	res := []flatcfg.Option{
		flatcfg.WithLogger(theLog),
		flatcfg.SegmentChildren(cfg.Segment),
	}
	fmat, ok := format.XMLFormat, false
	switch {
	case cfg.X:
		fmat, ok = format.XMLFormat, true
	case cfg.Y:
		fmat, ok = format.YAMLFormat, true
	case cfg.J:
		fmat, ok = format.JSONFormat, true
	}
	if cfg.InFormat != nil {
		fmat, ok = *cfg.InFormat, true
	}
	if ok {
		res = append(res, flatcfg.WithFormat(fmat))
	}
	return res
}

func (cfg *MainConfig) output() format.Output {
	out := format.TextOutput
	switch {
	case cfg.Y:
		out = format.YAMLOutput
	case cfg.J:
		out = format.JSONOutput
	}
	if cfg.OutFormat != nil {
		out = *cfg.OutFormat
	}
	return out
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeOutput(cfg.output()),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig
	Expand bool `cli:"name=e desc='expand $[expr] in values'"`

	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig
	Type    string `cli:"name=t desc='value type: string, int, uint, float, bool, duration'"`
	Default string `cli:"name=d desc='value printed when the path is missing'"`

	Get *cli.Command
}

type VectorConfig struct {
	*MainConfig
	Type string `cli:"name=t desc='element type: string, int, uint, float, bool, duration'"`

	Vector *cli.Command
}

type ChildrenConfig struct {
	*MainConfig

	Children *cli.Command
}

type ExistsConfig struct {
	*MainConfig

	Exists *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Inline  bool `cli:"name=i desc='mark edits inside changed values'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchString bool `cli:"name=p desc='patch arg is the patch text'"`

	Patch *cli.Command
}
