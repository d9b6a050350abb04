package convert

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// EncodeMsgpack writes the tree rooted at n to w as MessagePack.  Data is
// written as bin and dates with the timestamp extension.
func EncodeMsgpack(n *ir.Node, w io.Writer) error {
	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)
	enc.Reset(w)
	return n.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		switch y.Kind() {
		case ir.DictKind:
			return true, enc.EncodeMapLen(y.Len())
		case ir.ArrayKind:
			return true, enc.EncodeArrayLen(y.Len())
		case ir.KeyKind:
			if y == n || !y.Parent().Is(ir.DictKind) {
				return false, fmt.Errorf("%w: key %q outside a dictionary", ErrUnsupported, y.Name())
			}
			if y.Value() == nil {
				return false, fmt.Errorf("%w: key %q has no value", ErrUnsupported, y.Name())
			}
			return true, enc.EncodeString(y.Name())
		case ir.DataKind:
			return false, enc.EncodeBytes(y.Data())
		case ir.DateKind:
			return false, enc.EncodeTime(y.Date())
		case ir.StringKind:
			return false, enc.EncodeString(y.Text())
		case ir.IntegerKind:
			return false, enc.EncodeInt(y.Int())
		case ir.RealKind:
			return false, enc.EncodeFloat64(y.Real())
		case ir.BooleanKind:
			return false, enc.EncodeBool(y.Bool())
		}
		return false, fmt.Errorf("%w: %s", ErrUnsupported, y.Kind())
	})
}

type msgpackFrame struct {
	n    *ir.Node
	left int
}

// DecodeMsgpack reads one MessagePack value from r.  Map keys which are not
// strings are formatted as strings.
//
// The caller owns the result.
func DecodeMsgpack(r io.Reader) (*ir.Node, error) {
	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)
	dec.Reset(r)
	var (
		root  *ir.Node
		stack []*msgpackFrame
	)
	fail := func(n *ir.Node, err error) (*ir.Node, error) {
		if n != nil && n != root && n.Parent() == nil {
			n.Free()
		}
		if root != nil {
			root.Free()
		}
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %w", ir.ErrDecode, err)
	}
	for {
		var top *msgpackFrame
		if len(stack) != 0 {
			top = stack[len(stack)-1]
		}
		var name string
		if top != nil && top.n.Is(ir.DictKind) {
			k, err := dec.DecodeInterface()
			if err != nil {
				return fail(nil, err)
			}
			name = keyString(k)
		}
		c, err := dec.PeekCode()
		if err != nil {
			return fail(nil, err)
		}
		var (
			n *ir.Node
			l int
		)
		switch {
		case c == msgpcode.Nil:
			return fail(nil, fmt.Errorf("%w: nil", ErrUnsupported))
		case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
			if l, err = dec.DecodeMapLen(); err == nil {
				n, err = ir.NewDictionary()
			}
		case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
			if l, err = dec.DecodeArrayLen(); err == nil {
				n, err = ir.NewArray()
			}
		default:
			var v any
			if v, err = dec.DecodeInterface(); err == nil {
				n, err = leafNode(v)
			}
		}
		if err != nil {
			return fail(nil, err)
		}
		switch {
		case top == nil:
			root = n
		case top.n.Is(ir.DictKind):
			err = top.n.Set(name, n)
		default:
			err = top.n.Append(n)
		}
		if err != nil {
			return fail(n, err)
		}
		if top != nil {
			top.left--
		}
		if l > 0 {
			stack = append(stack, &msgpackFrame{n: n, left: l})
			continue
		}
		for len(stack) != 0 && stack[len(stack)-1].left == 0 {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return root, nil
		}
	}
}
