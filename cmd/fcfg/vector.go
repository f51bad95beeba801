package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/flatcfg"
)

func vector(cfg *VectorConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Vector.Parse(cc, args)
	if err != nil {
		cfg.Vector.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: vector requires a path", cli.ErrUsage)
	}
	ty, err := valueType(cfg.Type)
	if err != nil {
		return err
	}
	path := args[0]
	for _, arg := range docArgs(args[1:]) {
		c, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		vs, err := flatcfg.TryGetVectorValue(c, path, ty)
		if err != nil {
			return fmt.Errorf("%s: %w", docName(cfg.MainConfig, arg), err)
		}
		res := make([]any, vs.Len())
		for i := range res {
			res[i] = printable(vs.Index(i))
		}
		if err := writeValue(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
