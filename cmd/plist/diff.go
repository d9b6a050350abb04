package main

import (
	"fmt"
	"io"

	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/libdiff"

	"github.com/scott-cotton/cli"
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
	a, err := cfg.readNode(cc, args[0])
	if err != nil {
		return err
	}
	defer a.Free()
	b, err := cfg.readNode(cc, args[1])
	if err != nil {
		return err
	}
	defer b.Free()
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if cfg.Text {
		if cfg.Reverse {
			a, b = b, a
		}
		d, err := libdiff.DiffText(a, b, cfg.encOpts(w)...)
		if err != nil {
			return false, err
		}
		if d == "" {
			return false, nil
		}
		_, err = io.WriteString(w, d)
		return true, err
	}
	cs, err := libdiff.Diff(a, b)
	if err != nil {
		return false, err
	}
	if len(cs) == 0 {
		return false, nil
	}
	if cfg.Reverse {
		cs = libdiff.Reverse(cs)
	}
	if !cfg.Doc {
		return true, libdiff.WriteChanges(w, cs, cfg.useColor(w))
	}
	d, err := libdiff.ToNode(cs)
	if err != nil {
		return false, err
	}
	defer d.Free()
	return true, cfg.writeNode(w, d)
}
