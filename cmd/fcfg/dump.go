package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/flatcfg/eval"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range docArgs(args) {
		c, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if cfg.Expand {
			if err := eval.ExpandAll(c, nil); err != nil {
				return fmt.Errorf("error expanding %s: %w", docName(cfg.MainConfig, arg), err)
			}
		}
		if err := c.Encode(cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", docName(cfg.MainConfig, arg), err)
		}
	}
	return nil
}
