package eval

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/flatcfg"
)

func exprOpts(c *flatcfg.Config) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return c.Source(), nil
		},
			new(func() string)),
		expr.Function("get", func(params ...any) (any, error) {
			return flatcfg.TryGet[string](c, params[0].(string))
		},
			new(func(string) string)),
		expr.Function("getOr", func(params ...any) (any, error) {
			if v, ok := c.Raw(params[0].(string)); ok {
				return v, nil
			}
			return params[1], nil
		},
			new(func(string, any) any)),
		expr.Function("exists", func(params ...any) (any, error) {
			return c.Exists(params[0].(string)), nil
		},
			new(func(string) bool)),
		expr.Function("children", func(params ...any) (any, error) {
			return c.ChildrenOf(params[0].(string)), nil
		},
			new(func(string) []string)),
		expr.Function("vector", func(params ...any) (any, error) {
			return flatcfg.TryGetVector[string](c, params[0].(string))
		},
			new(func(string) []string)),
		expr.Function("getInt", func(params ...any) (any, error) {
			return flatcfg.TryGet[int](c, params[0].(string))
		},
			new(func(string) int)),
		expr.Function("getFloat", func(params ...any) (any, error) {
			return flatcfg.TryGet[float64](c, params[0].(string))
		},
			new(func(string) float64)),
		expr.Function("getBool", func(params ...any) (any, error) {
			return flatcfg.TryGet[bool](c, params[0].(string))
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
