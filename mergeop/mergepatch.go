package mergeop

import (
	"fmt"

	"github.com/signadot/plist-format/go-plist/debug"
	"github.com/signadot/plist-format/go-plist/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var mPatchSym = &mPatchSymbol{name: mPatchName}

func MergePatch() Symbol {
	return mPatchSym
}

const (
	mPatchName name = "merge-patch"
)

type mPatchSymbol struct {
	name
}

func (s mPatchSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: %s op has no args, got %v", ErrOpArgs, s, args)
	}
	if !child.Is(ir.DictKind) {
		return nil, fmt.Errorf("%w: %s body must be a dictionary, got %s", ErrBadPatch, s, child.Kind())
	}
	d, err := toJSON(child)
	if err != nil {
		return nil, err
	}
	return &mPatchOp{patch: d, op: op{name: s.name, child: child}}, nil
}

type mPatchOp struct {
	op
	patch []byte
}

func (mp mPatchOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge-patch op called on %s\n", doc.Path())
	}
	d, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, mp.patch)
	if err != nil {
		return nil, err
	}
	return fromJSON(out)
}
