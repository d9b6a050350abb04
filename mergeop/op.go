package mergeop

import (
	"errors"

	"github.com/signadot/plist-format/go-plist/ir"
)

var (
	ErrUnknownOp = errors.New("unknown op")
	ErrOpArgs    = errors.New("bad op arguments")
	ErrBadPatch  = errors.New("bad patch")
)

// Op patches doc into a new tree owned by the caller.  doc is not
// modified.
type Op interface {
	Patch(doc *ir.Node) (*ir.Node, error)
	String() string
}

type op struct {
	name  name
	child *ir.Node
}

func (o op) String() string {
	return o.name.String()
}
