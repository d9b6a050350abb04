package encode

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/token"
)

type EncState struct {
	depth, indent int
	wire          bool

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes node to w in the text form read by the parse package.
// The pretty form puts each entry on its own line and ends with a
// newline; the wire form has no whitespace at all.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if err := node.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, encodePost(n, w, es)
		}
		return true, encodePre(n, n == node, w, es)
	}); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func encodePre(n *ir.Node, isRoot bool, w io.Writer, es *EncState) error {
	p := n.Parent()
	if !isRoot && p.Is(ir.ArrayKind) {
		if n.ParentIndex() > 0 {
			if err := writeSep(w, es, ir.ArrayKind, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	switch n.Kind() {
	case ir.DictKind:
		es.depth++
		return writeSep(w, es, ir.DictKind, "{")
	case ir.ArrayKind:
		es.depth++
		return writeSep(w, es, ir.ArrayKind, "(")
	case ir.KeyKind:
		if isRoot || !p.Is(ir.DictKind) {
			return fmt.Errorf("%w: key %q outside a dictionary", ErrEncoding, n.Name())
		}
		if n.Value() == nil {
			return fmt.Errorf("%w: key %q has no value", ErrEncoding, n.Name())
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.KeyKind, KeyColor, token.Quote(n.Name()))); err != nil {
			return err
		}
		sep := " = "
		if es.wire {
			sep = ":"
		}
		return writeSep(w, es, ir.KeyKind, sep)
	}
	v, err := leafString(n)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, n.Kind(), ValueColor, v))
}

func encodePost(n *ir.Node, w io.Writer, es *EncState) error {
	switch n.Kind() {
	case ir.DictKind, ir.ArrayKind:
		es.depth--
		if n.Len() != 0 {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		end := "}"
		if n.Is(ir.ArrayKind) {
			end = ")"
		}
		return writeSep(w, es, n.Kind(), end)
	case ir.KeyKind:
		return writeSep(w, es, ir.DictKind, ";")
	}
	return nil
}

func leafString(n *ir.Node) (string, error) {
	switch n.Kind() {
	case ir.DataKind:
		return "<" + hex.EncodeToString(n.Data()) + ">", nil
	case ir.DateKind:
		return "<*D" + token.FormatDate(n.Date()) + ">", nil
	case ir.StringKind:
		return token.Quote(n.Text()), nil
	case ir.IntegerKind:
		return strconv.FormatInt(n.Int(), 10), nil
	case ir.RealKind:
		s, err := token.FormatReal(n.Real())
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return s, nil
	case ir.BooleanKind:
		return strconv.FormatBool(n.Bool()), nil
	}
	return "", fmt.Errorf("%w: cannot encode %s node", ErrEncoding, n.Kind())
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeSep(w io.Writer, es *EncState, k ir.Kind, sep string) error {
	return writeString(w, applyColor(es, k, SepColor, sep))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, k ir.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}
