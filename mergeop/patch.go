package mergeop

import (
	"fmt"

	"github.com/signadot/plist-format/go-plist/debug"
	"github.com/signadot/plist-format/go-plist/ir"
)

// Instance looks up the op named name and instantiates it with child and
// args.
func Instance(name string, child *ir.Node, args ...string) (Op, error) {
	sym := Lookup(name)
	if sym == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	return sym.Instance(child, args)
}

// Apply patches doc with a patch document and returns the result, which
// the caller owns.  A patch document is a dictionary such as
//
//	{"op" = "delete"; "args" = ("$.a", "$.b[0]");}
//	{"op" = "update"; "value" = {"a" = 1;};}
//
// or an array of such dictionaries applied in order.  "op" names a
// registered op, "args" is an optional array of strings and "value" is
// the op body.
func Apply(doc, patch *ir.Node) (*ir.Node, error) {
	if !patch.Is(ir.ArrayKind) {
		return applyOne(doc, patch)
	}
	res, err := doc.Copy()
	if err != nil {
		return nil, err
	}
	for step := range patch.All() {
		next, err := applyOne(res, step)
		res.Free()
		if err != nil {
			return nil, fmt.Errorf("patch step %d: %w", step.ParentIndex(), err)
		}
		res = next
	}
	return res, nil
}

func applyOne(doc, patch *ir.Node) (*ir.Node, error) {
	o, err := parseStep(patch)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %s at %s\n", o, doc.Path())
	}
	res, err := o.Patch(doc)
	if err != nil {
		return nil, fmt.Errorf("%s patching %s gave %w", o, doc.Path(), err)
	}
	return res, nil
}

func parseStep(step *ir.Node) (Op, error) {
	if !step.Is(ir.DictKind) {
		return nil, fmt.Errorf("%w: patch step is %s, not a dictionary", ErrBadPatch, step.Kind())
	}
	for k := range step.All() {
		switch k.Name() {
		case "op", "args", "value":
		default:
			return nil, fmt.Errorf("%w: unknown field %q", ErrBadPatch, k.Name())
		}
	}
	opName := step.Get("op")
	if !opName.Is(ir.StringKind) {
		return nil, fmt.Errorf("%w: \"op\" must be a string", ErrBadPatch)
	}
	var args []string
	if a := step.Get("args"); a != nil {
		if !a.Is(ir.ArrayKind) {
			return nil, fmt.Errorf("%w: \"args\" must be an array", ErrBadPatch)
		}
		for arg := range a.All() {
			if !arg.Is(ir.StringKind) {
				return nil, fmt.Errorf("%w: argument %d is %s, not a string", ErrBadPatch, arg.ParentIndex(), arg.Kind())
			}
			args = append(args, arg.Text())
		}
	}
	return Instance(opName.Text(), step.Get("value"), args...)
}
