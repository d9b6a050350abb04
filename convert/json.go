package convert

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/token"
)

// EncodeJSON writes the tree rooted at n to w as JSON, keeping dictionary
// order.
func EncodeJSON(n *ir.Node, w io.Writer, opts ...Option) error {
	o := newOpts(opts)
	buf := &bytes.Buffer{}
	err := n.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if !isPost {
			if p := y.Parent(); y != n && p.Kind() != ir.KeyKind && y.ParentIndex() > 0 {
				buf.WriteByte(',')
			}
		}
		switch y.Kind() {
		case ir.DictKind:
			if isPost {
				buf.WriteByte('}')
				return false, nil
			}
			buf.WriteByte('{')
			return true, nil
		case ir.ArrayKind:
			if isPost {
				buf.WriteByte(']')
				return false, nil
			}
			buf.WriteByte('[')
			return true, nil
		case ir.KeyKind:
			if isPost {
				return false, nil
			}
			if y == n || !y.Parent().Is(ir.DictKind) {
				return false, fmt.Errorf("%w: key %q outside a dictionary", ErrUnsupported, y.Name())
			}
			if y.Value() == nil {
				return false, fmt.Errorf("%w: key %q has no value", ErrUnsupported, y.Name())
			}
			if err := writeJSONString(buf, y.Name()); err != nil {
				return false, err
			}
			buf.WriteByte(':')
			return true, nil
		}
		if isPost {
			return false, nil
		}
		return false, writeJSONLeaf(buf, y)
	})
	if err != nil {
		return err
	}
	if o.pretty {
		out := &bytes.Buffer{}
		if err := json.Indent(out, buf.Bytes(), "", o.indent); err != nil {
			return err
		}
		buf = out
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func writeJSONLeaf(buf *bytes.Buffer, n *ir.Node) error {
	switch n.Kind() {
	case ir.DataKind:
		return writeJSONString(buf, base64.StdEncoding.EncodeToString(n.Data()))
	case ir.DateKind:
		return writeJSONString(buf, n.Date().Format(time.RFC3339))
	case ir.StringKind:
		return writeJSONString(buf, n.Text())
	case ir.IntegerKind:
		buf.WriteString(strconv.FormatInt(n.Int(), 10))
	case ir.RealKind:
		s, err := token.FormatReal(n.Real())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnsupported, err)
		}
		buf.WriteString(s)
	case ir.BooleanKind:
		buf.WriteString(strconv.FormatBool(n.Bool()))
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

type jsonFrame struct {
	n    *ir.Node
	name string
	key  bool
}

// DecodeJSON reads one JSON document from r.  Numbers with a fraction or
// exponent become reals and all others integers.
//
// The caller owns the result.
func DecodeJSON(r io.Reader) (*ir.Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var (
		root  *ir.Node
		stack []*jsonFrame
	)
	fail := func(n *ir.Node, err error) (*ir.Node, error) {
		if n != nil && n != root && n.Parent() == nil {
			n.Free()
		}
		if root != nil {
			root.Free()
		}
		return nil, fmt.Errorf("%w: %w", ir.ErrDecode, err)
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return fail(nil, err)
		}
		var top *jsonFrame
		if len(stack) != 0 {
			top = stack[len(stack)-1]
		}
		if d, ok := tok.(json.Delim); ok && (d == '}' || d == ']') {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			continue
		}
		if top != nil && top.key {
			s, ok := tok.(string)
			if !ok {
				return fail(nil, fmt.Errorf("%w: object key %v", ErrUnsupported, tok))
			}
			top.name = s
			top.key = false
			continue
		}
		var n *ir.Node
		switch x := tok.(type) {
		case json.Delim:
			if x == '{' {
				n, err = ir.NewDictionary()
			} else {
				n, err = ir.NewArray()
			}
		default:
			n, err = leafNode(x)
		}
		if err != nil {
			return fail(nil, err)
		}
		switch {
		case top == nil:
			root = n
		case top.n.Is(ir.DictKind):
			err = top.n.Set(top.name, n)
			top.key = true
		default:
			err = top.n.Append(n)
		}
		if err != nil {
			return fail(n, err)
		}
		if _, ok := tok.(json.Delim); ok {
			stack = append(stack, &jsonFrame{n: n, key: n.Is(ir.DictKind)})
			continue
		}
		if len(stack) == 0 {
			break
		}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		root.Free()
		return nil, fmt.Errorf("%w: trailing data after JSON document", ir.ErrDecode)
	}
	return root, nil
}
