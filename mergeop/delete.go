package mergeop

import (
	"fmt"

	"github.com/signadot/plist-format/go-plist/debug"
	"github.com/signadot/plist-format/go-plist/ir"
)

var deleteSym = &deleteSymbol{name: deleteName}

func Delete() Symbol {
	return deleteSym
}

const (
	deleteName name = "delete"
)

type deleteSymbol struct {
	name
}

func (s deleteSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %s op needs at least one path", ErrOpArgs, s)
	}
	for _, a := range args {
		if _, err := ir.ParsePath(a); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpArgs, err)
		}
	}
	return &deleteOp{paths: args, op: op{name: s.name, child: child}}, nil
}

type deleteOp struct {
	op
	paths []string
}

// Patch removes the nodes at each path in turn, so a path sees the
// removals of the paths before it.
func (do deleteOp) Patch(doc *ir.Node) (*ir.Node, error) {
	res, err := doc.Copy()
	if err != nil {
		return nil, err
	}
	for _, p := range do.paths {
		if debug.Patch() {
			debug.Logf("delete op removing %s\n", p)
		}
		if err := deletePath(res, p); err != nil {
			res.Free()
			return nil, err
		}
	}
	return res, nil
}

func deletePath(root *ir.Node, p string) error {
	n, err := root.GetPath(p)
	if err != nil {
		return err
	}
	parent := n.Parent()
	switch {
	case n == root:
		return fmt.Errorf("%w: cannot delete the document root", ErrOpArgs)
	case parent.Is(ir.KeyKind):
		return parent.Parent().Delete(parent.Name())
	case parent.Is(ir.ArrayKind):
		return parent.DeleteAt(n.ParentIndex())
	}
	return n.Free()
}
