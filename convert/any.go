package convert

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/token"
)

type anyFrame struct {
	dict  bool
	name  string
	items yaml.MapSlice
	elems []any
}

// ToAny returns the Go value corresponding to the tree rooted at n.
// Dictionaries become yaml.MapSlice so entry order survives, arrays
// become []any, and scalars become []byte, time.Time, string, int64,
// float64 or bool.
func ToAny(n *ir.Node) (any, error) {
	return toAny(n, false)
}

// toAny is ToAny, with data and dates rendered as strings when textual is
// set.
func toAny(n *ir.Node, textual bool) (any, error) {
	var (
		stack []*anyFrame
		res   any
	)
	emit := func(v any) {
		if len(stack) == 0 {
			res = v
			return
		}
		f := stack[len(stack)-1]
		if f.dict {
			f.items = append(f.items, yaml.MapItem{Key: f.name, Value: v})
			return
		}
		f.elems = append(f.elems, v)
	}
	err := n.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		switch y.Kind() {
		case ir.DictKind, ir.ArrayKind:
			if !isPost {
				stack = append(stack, &anyFrame{dict: y.Is(ir.DictKind)})
				return true, nil
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.dict {
				if f.items == nil {
					f.items = yaml.MapSlice{}
				}
				emit(f.items)
				return false, nil
			}
			if f.elems == nil {
				f.elems = []any{}
			}
			emit(f.elems)
		case ir.KeyKind:
			if isPost {
				return false, nil
			}
			if len(stack) == 0 || !stack[len(stack)-1].dict {
				return false, fmt.Errorf("%w: key %q outside a dictionary", ErrUnsupported, y.Name())
			}
			if y.Value() == nil {
				return false, fmt.Errorf("%w: key %q has no value", ErrUnsupported, y.Name())
			}
			stack[len(stack)-1].name = y.Name()
			return true, nil
		default:
			if !isPost {
				emit(leafAny(y, textual))
			}
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func leafAny(n *ir.Node, textual bool) any {
	switch n.Kind() {
	case ir.DataKind:
		if textual {
			return base64.StdEncoding.EncodeToString(n.Data())
		}
		return slices.Clone(n.Data())
	case ir.DateKind:
		if textual {
			return n.Date().Format(time.RFC3339)
		}
		return n.Date()
	case ir.StringKind:
		return n.Text()
	case ir.IntegerKind:
		return n.Int()
	case ir.RealKind:
		return n.Real()
	case ir.BooleanKind:
		return n.Bool()
	}
	return nil
}

type anyItem struct {
	v      any
	parent *ir.Node
	name   string
}

// FromAny builds a tree from a Go value.  It accepts what ToAny returns as
// well as map[string]any, map[any]any (both in sorted key order), the
// sized integer and float types, json.Number and *ir.Node, which is
// copied.  A nil anywhere in v fails with ErrUnsupported.
//
// The caller owns the result.
func FromAny(v any) (*ir.Node, error) {
	var root *ir.Node
	fail := func(n *ir.Node, err error) (*ir.Node, error) {
		if n != nil && n.Parent() == nil && n != root {
			n.Free()
		}
		if root != nil {
			root.Free()
		}
		return nil, err
	}
	work := []anyItem{{v: v}}
	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]
		n, kids, err := fromAnyOne(it.v)
		if err != nil {
			return fail(nil, err)
		}
		switch {
		case it.parent == nil:
			root = n
		case it.parent.Is(ir.DictKind):
			err = it.parent.Set(it.name, n)
		default:
			err = it.parent.Append(n)
		}
		if err != nil {
			return fail(n, err)
		}
		for i := len(kids) - 1; i >= 0; i-- {
			kids[i].parent = n
			work = append(work, kids[i])
		}
	}
	return root, nil
}

func fromAnyOne(v any) (*ir.Node, []anyItem, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		n, err := ir.NewDictionary()
		if err != nil {
			return nil, nil, err
		}
		kids := make([]anyItem, len(x))
		for i, item := range x {
			kids[i] = anyItem{v: item.Value, name: keyString(item.Key)}
		}
		return n, kids, nil
	case map[string]any:
		n, err := ir.NewDictionary()
		if err != nil {
			return nil, nil, err
		}
		kids := make([]anyItem, 0, len(x))
		for _, k := range sortedKeys(x) {
			kids = append(kids, anyItem{v: x[k], name: k})
		}
		return n, kids, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[keyString(k)] = v
		}
		return fromAnyOne(m)
	case []any:
		n, err := ir.NewArray()
		if err != nil {
			return nil, nil, err
		}
		kids := make([]anyItem, len(x))
		for i := range x {
			kids[i] = anyItem{v: x[i]}
		}
		return n, kids, nil
	case *ir.Node:
		n, err := x.Copy()
		return n, nil, err
	}
	n, err := leafNode(v)
	return n, nil, err
}

func leafNode(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null", ErrUnsupported)
	case []byte:
		return ir.NewData(x)
	case time.Time:
		return ir.NewDate(x)
	case string:
		return ir.NewString(x)
	case bool:
		return ir.NewBoolean(x)
	case int:
		return ir.NewInteger(int64(x))
	case int8:
		return ir.NewInteger(int64(x))
	case int16:
		return ir.NewInteger(int64(x))
	case int32:
		return ir.NewInteger(int64(x))
	case int64:
		return ir.NewInteger(x)
	case uint:
		return uintNode(uint64(x))
	case uint8:
		return ir.NewInteger(int64(x))
	case uint16:
		return ir.NewInteger(int64(x))
	case uint32:
		return ir.NewInteger(int64(x))
	case uint64:
		return uintNode(x)
	case float32:
		return ir.NewReal(float64(x))
	case float64:
		return ir.NewReal(x)
	case json.Number:
		return numberNode(string(x))
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

func uintNode(u uint64) (*ir.Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", token.ErrNumberRange, u)
	}
	return ir.NewInteger(int64(u))
}

// numberNode classifies a JSON number the way the text decoder does: one
// with a fraction or exponent is real, any other is an integer.
func numberNode(s string) (*ir.Node, error) {
	isReal, err := token.Number([]byte(s))
	if err != nil {
		return nil, err
	}
	if isReal {
		f, err := token.ParseReal([]byte(s))
		if err != nil {
			return nil, err
		}
		return ir.NewReal(f)
	}
	i, err := token.ParseInt([]byte(s))
	if err != nil {
		return nil, err
	}
	return ir.NewInteger(i)
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
