package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch", cli.ErrUsage)
	}
	var d []byte
	if cfg.PatchString {
		d = []byte(args[0])
	} else {
		d, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading patch: %w", err)
		}
	}
	for _, arg := range docArgs(args[1:]) {
		c, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := c.Patch(d); err != nil {
			return fmt.Errorf("error patching %s: %w", docName(cfg.MainConfig, arg), err)
		}
		if err := c.Encode(cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
