package main

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/signadot/flatcfg"
)

var valueTypes = map[string]reflect.Type{
	"string":   reflect.TypeFor[string](),
	"int":      reflect.TypeFor[int64](),
	"uint":     reflect.TypeFor[uint64](),
	"float":    reflect.TypeFor[float64](),
	"bool":     reflect.TypeFor[bool](),
	"duration": reflect.TypeFor[time.Duration](),
}

func valueType(name string) (reflect.Type, error) {
	ty, ok := valueTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", cli.ErrUsage, name)
	}
	return ty, nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path", cli.ErrUsage)
	}
	ty, err := valueType(cfg.Type)
	if err != nil {
		return err
	}
	hasDefault := false
	for _, opt := range cfg.Get.Opts {
		if opt.Name == "d" {
			hasDefault = opt.Value != nil
			break
		}
	}
	path := args[0]
	for _, arg := range docArgs(args[1:]) {
		c, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		v, err := flatcfg.TryGetValue(c, path, ty)
		switch {
		case errors.Is(err, flatcfg.ErrNotFound) && hasDefault:
			err = writeValue(cfg.MainConfig, cc.Out, cfg.Default)
		case err != nil:
			return fmt.Errorf("%s: %w", docName(cfg.MainConfig, arg), err)
		default:
			err = writeValue(cfg.MainConfig, cc.Out, printable(v))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// printable renders durations as text in every output format.
func printable(v reflect.Value) any {
	if d, ok := v.Interface().(time.Duration); ok {
		return d.String()
	}
	return v.Interface()
}
