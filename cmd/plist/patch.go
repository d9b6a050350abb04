package main

import (
	"fmt"
	"io"

	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/mergeop"
	"github.com/signadot/plist-format/go-plist/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Ops {
		for _, s := range mergeop.Symbols() {
			if _, err := fmt.Fprintln(cc.Out, s); err != nil {
				return err
			}
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: a patch argument is required", cli.ErrUsage)
	}
	var p *ir.Node
	if cfg.String {
		p, err = parse.Parse([]byte(args[0]), cfg.parseOpts()...)
	} else {
		p, err = cfg.readNode(cc, args[0])
	}
	if err != nil {
		return fmt.Errorf("error reading patch: %w", err)
	}
	defer p.Free()
	return eachFile(cfg.MainConfig, cc, args[1:], func(w io.Writer, n *ir.Node) error {
		res, err := mergeop.Apply(n, p)
		if err != nil {
			return err
		}
		defer res.Free()
		return cfg.writeNode(w, res)
	})
}
