package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/plist-format/go-plist/eval"
	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/parse"

	"github.com/scott-cotton/cli"
)

func evalMain(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expand {
		return eachFile(cfg.MainConfig, cc, args, func(w io.Writer, n *ir.Node) error {
			res, err := eval.ExpandEnv(n, cfg.Env)
			if err != nil {
				return err
			}
			defer res.Free()
			return cfg.writeNode(w, res)
		})
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: an expression is required", cli.ErrUsage)
	}
	src := args[0]
	return eachFile(cfg.MainConfig, cc, args[1:], func(w io.Writer, n *ir.Node) error {
		res, err := eval.Eval(n, src, cfg.Env)
		if err != nil {
			return err
		}
		defer res.Free()
		return cfg.writeNode(w, res)
	})
}

// envFunc records a -e name=val option.  val is read as a text document
// and, failing that, taken as a string.
func envFunc(env map[string]any, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
	}
	n, err := parse.Parse([]byte(val))
	if err != nil {
		env[name] = val
		return nil
	}
	defer n.Free()
	v, err := eval.ToValue(n)
	if err != nil {
		return err
	}
	env[name] = v
	return nil
}
