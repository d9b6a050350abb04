package mergeop

import (
	"fmt"

	"github.com/signadot/plist-format/go-plist/ir"
)

var replaceSym = &replaceSymbol{name: replaceName}

func Replace() Symbol {
	return replaceSym
}

const (
	replaceName name = "replace"
)

type replaceSymbol struct {
	name
}

func (s replaceSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: %s op has no args, got %v", ErrOpArgs, s, args)
	}
	if child == nil {
		return nil, fmt.Errorf("%w: %s op needs a value", ErrBadPatch, s)
	}
	return &replaceOp{op: op{name: s.name, child: child}}, nil
}

type replaceOp struct {
	op
}

func (r replaceOp) Patch(_ *ir.Node) (*ir.Node, error) {
	return r.child.Copy()
}
