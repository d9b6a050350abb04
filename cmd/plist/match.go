package main

import (
	"fmt"
	"io"

	plist "github.com/signadot/plist-format/go-plist"
	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	var m *ir.Node
	if cfg.String {
		m, err = parse.Parse([]byte(args[0]), cfg.parseOpts()...)
	} else {
		m, err = cfg.readNode(cc, args[0])
	}
	if err != nil {
		return fmt.Errorf("error reading match: %w", err)
	}
	defer m.Free()
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	matched := 0
	for _, file := range files {
		ok, err := matchFile(cfg, cc, m, file, matched > 0)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		if ok {
			matched++
		}
	}
	if matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func matchFile(cfg *MatchConfig, cc *cli.Context, m *ir.Node, file string, sep bool) (bool, error) {
	doc, err := cfg.readNode(cc, file)
	if err != nil {
		return false, err
	}
	defer doc.Free()
	ok, err := plist.Match(doc, m)
	if err != nil || !ok {
		return false, err
	}
	if sep {
		if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
			return false, err
		}
	}
	if !cfg.Trim {
		return true, cfg.writeNode(cc.Out, doc)
	}
	res, err := plist.Trim(m, doc)
	if err != nil {
		return false, err
	}
	defer res.Free()
	return true, cfg.writeNode(cc.Out, res)
}
