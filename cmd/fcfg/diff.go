package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/flatcfg/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := loadDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(a.Map(), b.Map())
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if err := libdiff.Format(cc.Out, changes, cfg.Inline); err != nil {
		return err
	}
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
