package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func children(cfg *ChildrenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Children.Parse(cc, args)
	if err != nil {
		cfg.Children.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: children requires a path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range docArgs(args[1:]) {
		c, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		ps := c.ChildrenOf(path)
		res := make([]any, len(ps))
		for i, p := range ps {
			res[i] = p
		}
		if err := writeValue(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
