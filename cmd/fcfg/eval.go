package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/flatcfg/eval"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range docArgs(args[1:]) {
		c, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := eval.Eval(c, src, eval.Env(cfg.Env))
		if err != nil {
			return fmt.Errorf("%s: %w", docName(cfg.MainConfig, arg), err)
		}
		if ss, ok := res.([]string); ok {
			vs := make([]any, len(ss))
			for i, s := range ss {
				vs[i] = s
			}
			res = vs
		}
		if err := writeValue(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
