package main

import (
	"fmt"
	"io"

	"github.com/signadot/plist-format/go-plist/ir"

	"github.com/scott-cotton/cli"
)

// eachFile decodes each file in turn, standard input when there are none,
// and calls f with the document, which is freed when f returns.  Outputs
// for successive files are separated by a "---" line.
func eachFile(cfg *MainConfig, cc *cli.Context, files []string, f func(w io.Writer, n *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		n, err := cfg.readNode(cc, file)
		if err != nil {
			return err
		}
		err = f(cc.Out, n)
		n.Free()
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
