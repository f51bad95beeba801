package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func exists(cfg *ExistsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Exists.Parse(cc, args)
	if err != nil {
		cfg.Exists.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: exists requires a path", cli.ErrUsage)
	}
	path := args[0]
	missing := false
	for _, arg := range docArgs(args[1:]) {
		c, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if !c.Exists(path) {
			theLog.Debug("missing", "path", path, "doc", docName(cfg.MainConfig, arg))
			missing = true
		}
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}
