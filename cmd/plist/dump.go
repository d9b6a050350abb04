package main

import (
	"io"

	"github.com/signadot/plist-format/go-plist/encode"
	"github.com/signadot/plist-format/go-plist/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc, args, func(w io.Writer, n *ir.Node) error {
		return encode.Dump(n, w)
	})
}
