package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: xml/x, yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.inFmtFunc(), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.outFmtFunc(), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "fcfg").
		WithSynopsis("fcfg [opts] command [opts]").
		WithDescription("fcfg reads configuration documents as flat path = value pairs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fcfgMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			GetCommand(cfg),
			VectorCommand(cfg),
			ChildrenCommand(cfg),
			ExistsCommand(cfg),
			EvalCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [-e] [docs]").
		WithDescription("dump every path and value of documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg, Type: "string"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-t type] [-d default] <path> [docs]").
		WithDescription("get the value at a path, converted to a type").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func VectorCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VectorConfig{MainConfig: mainCfg, Type: "string"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Vector, "vector").
		WithAliases("vec").
		WithSynopsis("vector [-t type] <path> [docs]").
		WithDescription("get the comma separated elements at a path, one per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vector(cfg, cc, args)
		})
}

func ChildrenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ChildrenConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Children, "children").
		WithAliases("c", "ls").
		WithSynopsis("children <path> [docs]").
		WithDescription("list the node paths below a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return children(cfg, cc, args)
		})
}

func ExistsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExistsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Exists, "exists").
		WithAliases("x").
		WithSynopsis("exists <path> [docs]").
		WithDescription("exit 1 unless the path exists in every document").
		WithRun(func(cc *cli.Context, args []string) error {
			return exists(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "set an expression variable",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})

	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=val]... <expr> [docs]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalCmd(cfg, cc, args)
		})
}

const evalDescription = `evaluate an expression against documents.

Expressions are written in expr (https://expr-lang.org) and can use

  get(path) getOr(path, default) exists(path) children(path) vector(path)
  getInt(path) getFloat(path) getBool(path) whereami() getenv(name)

for example

  fcfg eval 'len(children("Histograms"))' config.xml`

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		name, val, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
		}
		env[name] = val
		return 0, nil
	}
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("di").
		WithSynopsis("diff [-r] [-i] a b").
		WithDescription("diff the flattened documents a and b, exit 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-p] <patch.json> [docs]").
		WithDescription("apply a JSON patch (RFC 6902) over path keys and dump the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
