package eval

import (
	"fmt"
	"slices"

	"github.com/signadot/plist-format/go-plist/ir"
)

type valueFrame struct {
	dict  map[string]any
	arr   []any
	name  string
	isArr bool
}

// ToValue returns the tree rooted at n as a value expressions can index:
// dictionaries become map[string]any, arrays []any and scalars their Go
// counterparts.
func ToValue(n *ir.Node) (any, error) {
	var (
		stack []*valueFrame
		res   any
	)
	emit := func(v any) {
		if len(stack) == 0 {
			res = v
			return
		}
		f := stack[len(stack)-1]
		if f.isArr {
			f.arr = append(f.arr, v)
			return
		}
		f.dict[f.name] = v
	}
	err := n.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		switch y.Kind() {
		case ir.DictKind:
			if !isPost {
				stack = append(stack, &valueFrame{dict: make(map[string]any, y.Len())})
				return true, nil
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			emit(f.dict)
		case ir.ArrayKind:
			if !isPost {
				stack = append(stack, &valueFrame{arr: make([]any, 0, y.Len()), isArr: true})
				return true, nil
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			emit(f.arr)
		case ir.KeyKind:
			if isPost {
				return false, nil
			}
			if len(stack) == 0 || stack[len(stack)-1].isArr {
				return false, fmt.Errorf("%w: key %q outside a dictionary", ErrEval, y.Name())
			}
			stack[len(stack)-1].name = y.Name()
			return true, nil
		case ir.DataKind:
			if !isPost {
				emit(slices.Clone(y.Data()))
			}
		case ir.DateKind:
			if !isPost {
				emit(y.Date())
			}
		case ir.StringKind:
			if !isPost {
				emit(y.Text())
			}
		case ir.IntegerKind:
			if !isPost {
				emit(y.Int())
			}
		case ir.RealKind:
			if !isPost {
				emit(y.Real())
			}
		case ir.BooleanKind:
			if !isPost {
				emit(y.Bool())
			}
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
