package mergeop

import (
	"fmt"

	"github.com/signadot/plist-format/go-plist/debug"
	"github.com/signadot/plist-format/go-plist/ir"
)

var updateSym = &updateSymbol{name: updateName}

// Update returns the symbol for the native dictionary update, which
// keeps every kind intact.
func Update() Symbol {
	return updateSym
}

const (
	updateName name = "update"
)

type updateSymbol struct {
	name
}

func (s updateSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: %s op has no args, got %v", ErrOpArgs, s, args)
	}
	switch child.Kind() {
	case ir.DictKind, ir.KeyKind, ir.ArrayKind:
	default:
		return nil, fmt.Errorf("%w: cannot update from %s", ErrBadPatch, child.Kind())
	}
	return &updateOp{op: op{name: s.name, child: child}}, nil
}

type updateOp struct {
	op
}

func (u updateOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("update op called on %s with %s\n", doc.Path(), u.child)
	}
	res, err := doc.Copy()
	if err != nil {
		return nil, err
	}
	if err := res.Update(u.child); err != nil {
		res.Free()
		return nil, err
	}
	return res, nil
}
