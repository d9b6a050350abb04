package encode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/plist-format/go-plist/ir"
)

const (
	dumpIndent = 8
	dumpRow    = 16
)

// DumpDateLayout is the layout of dates in Dump output.
const DumpDateLayout = "2006-01-02T15:04:05-07:00"

// Dump writes a human readable outline of node to w, one node per line.
// Each line holds the kind name, and for keys and scalars "=" and the
// value.  Lines are indented by nesting depth.  Data is written as a hex
// dump below its line.
func Dump(node *ir.Node, w io.Writer) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	bw := bufio.NewWriter(w)
	depth := 0
	err := node.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		k := n.Kind()
		if isPost {
			if k.IsContainer() {
				depth--
			}
			return false, nil
		}
		bw.WriteString(strings.Repeat(" ", depth*dumpIndent))
		bw.WriteString(k.String())
		switch k {
		case ir.DictKind, ir.ArrayKind:
			depth++
		case ir.KeyKind:
			fmt.Fprintf(bw, "=%s", n.Name())
		case ir.DataKind:
			bw.WriteByte('\n')
			dumpData(bw, n.Data())
			return false, nil
		case ir.DateKind:
			fmt.Fprintf(bw, "=%s", n.Date().Format(DumpDateLayout))
		case ir.StringKind:
			fmt.Fprintf(bw, "=%s", n.Text())
		case ir.IntegerKind:
			fmt.Fprintf(bw, "=%d", n.Int())
		case ir.RealKind:
			fmt.Fprintf(bw, "=%f", n.Real())
		case ir.BooleanKind:
			fmt.Fprintf(bw, "=%t", n.Bool())
		}
		bw.WriteByte('\n')
		return true, nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// dumpData writes b as rows of offset, hex bytes and printable ASCII.
func dumpData(w *bufio.Writer, b []byte) {
	for i := 0; i < len(b); i += dumpRow {
		row := b[i:min(i+dumpRow, len(b))]
		fmt.Fprintf(w, "%d:\t", i)
		for _, c := range row {
			fmt.Fprintf(w, "%02x ", c)
		}
		w.WriteString(strings.Repeat(" ", (1+dumpRow-len(row))*3))
		for _, c := range row {
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			w.WriteByte(c)
		}
		w.WriteByte('\n')
	}
}
