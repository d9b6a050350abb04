package libdiff

import (
	"fmt"

	"github.com/signadot/plist-format/go-plist/ir"
)

type ChangeOp int

const (
	Insert ChangeOp = iota
	Delete
	Replace
)

func (op ChangeOp) String() string {
	switch op {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("<err: %d is not a change op>", int(op))
	}
}

// Change is one difference between two trees.  From and To are borrowed
// from the compared trees; From is nil for an insertion and To for a
// deletion.  Path locates the change in the from tree, except for an
// insertion, whose Path is in the to tree.
type Change struct {
	Op       ChangeOp
	Path     string
	From, To *ir.Node
}

// Reverse returns the changes taking to back to from.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		r := Change{Op: c.Op, Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		}
		res[i] = r
	}
	return res
}

// ToNode returns the changes as an array of dictionaries with entries
// "op", "path" and, where present, copies of "from" and "to".  The caller
// owns the result.
func ToNode(cs []Change) (*ir.Node, error) {
	res, err := ir.NewArray()
	if err != nil {
		return nil, err
	}
	for _, c := range cs {
		d, err := changeNode(c)
		if err == nil {
			err = res.Append(d)
			if err != nil {
				d.Free()
			}
		}
		if err != nil {
			res.Free()
			return nil, err
		}
	}
	return res, nil
}

func changeNode(c Change) (*ir.Node, error) {
	d, err := ir.NewDictionary()
	if err != nil {
		return nil, err
	}
	op, err := ir.NewString(c.Op.String())
	if err == nil {
		err = setOrFree(d, "op", op)
	}
	if err == nil {
		var path *ir.Node
		if path, err = ir.NewString(c.Path); err == nil {
			err = setOrFree(d, "path", path)
		}
	}
	for _, x := range []struct {
		name string
		n    *ir.Node
	}{{"from", c.From}, {"to", c.To}} {
		if err != nil || x.n == nil {
			continue
		}
		var cp *ir.Node
		if cp, err = x.n.Copy(); err == nil {
			err = setOrFree(d, x.name, cp)
		}
	}
	if err != nil {
		d.Free()
		return nil, err
	}
	return d, nil
}

func setOrFree(d *ir.Node, name string, v *ir.Node) error {
	if err := d.Set(name, v); err != nil {
		v.Free()
		return err
	}
	return nil
}
