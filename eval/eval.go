package eval

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/flatcfg"
	"github.com/signadot/flatcfg/debug"
)

var ErrEval = errors.New("eval error")

// Env holds variables visible to expressions in addition to the
// configuration functions.
type Env map[string]any

// Program is an expression compiled against one Config.
type Program struct {
	src string
	prg *vm.Program
	env Env
}

// Compile compiles src for repeated evaluation against c.
func Compile(c *flatcfg.Config, src string, env Env) (*Program, error) {
	if env == nil {
		env = Env{}
	}
	prg, err := expr.Compile(src, exprOpts(c)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	return &Program{src: src, prg: prg, env: env}, nil
}

func (p *Program) Run() (any, error) {
	res, err := vm.Run(p.prg, map[string]any(p.env))
	if err != nil {
		return nil, fmt.Errorf("%w: running %q: %w", ErrEval, p.src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", p.src, res)
	}
	return res, nil
}

// Eval compiles and runs src against c.
func Eval(c *flatcfg.Config, src string, env Env) (any, error) {
	p, err := Compile(c, src, env)
	if err != nil {
		return nil, err
	}
	return p.Run()
}

// EvalBool is Eval for conditions.
func EvalBool(c *flatcfg.Config, src string, env Env) (bool, error) {
	res, err := Eval(c, src, env)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not bool", ErrEval, src, res)
	}
	return b, nil
}
