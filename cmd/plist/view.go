package main

import (
	"io"

	"github.com/signadot/plist-format/go-plist/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc, args, func(w io.Writer, n *ir.Node) error {
		return cfg.writeNode(w, n)
	})
}
