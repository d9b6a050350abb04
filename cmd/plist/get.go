package main

import (
	"fmt"
	"io"

	"github.com/signadot/plist-format/go-plist/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg(args)
	if err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc, args, func(w io.Writer, n *ir.Node) error {
		res, err := n.GetPath(path)
		if err != nil {
			return err
		}
		return cfg.writeNode(w, res)
	})
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg(args)
	if err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc, args, func(w io.Writer, n *ir.Node) error {
		res, err := n.ListPath(nil, path)
		if err != nil {
			return err
		}
		for _, r := range res {
			if err := cfg.writeNode(w, r); err != nil {
				return err
			}
		}
		return nil
	})
}

// pathArg splits off the leading path argument, adding the root "$" when
// it is missing.
func pathArg(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: a path argument is required", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	return path, args[1:], nil
}
