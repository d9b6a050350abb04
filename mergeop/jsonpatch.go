package mergeop

import (
	"fmt"

	"github.com/signadot/plist-format/go-plist/debug"
	"github.com/signadot/plist-format/go-plist/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var jPatchSym = &jPatchSymbol{name: jPatchName}

func JSONPatch() Symbol {
	return jPatchSym
}

const (
	jPatchName name = "json-patch"
)

type jPatchSymbol struct {
	name
}

func (s jPatchSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: %s op has no args, got %v", ErrOpArgs, s, args)
	}
	if !child.Is(ir.ArrayKind) {
		return nil, fmt.Errorf("%w: %s body must be an array, got %s", ErrBadPatch, s, child.Kind())
	}
	d, err := toJSON(child)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPatch, err)
	}
	return &jPatchOp{ops: ops, op: op{name: s.name, child: child}}, nil
}

type jPatchOp struct {
	op
	ops jsonpatch.Patch
}

func (jp jPatchOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("json-patch op called on %s\n", doc.Path())
	}
	d, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jp.ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return fromJSON(out)
}
