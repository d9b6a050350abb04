package ir

import (
	"fmt"
	"time"
)

// Node is a single element of a property tree.
//
// A node is owned either by its parent or, when it has no parent, by the
// caller holding it.  Containers (dictionaries and arrays) own their
// children in insertion order; keys own exactly one value.
type Node struct {
	kind   Kind
	parent *Node
	index  int

	// DictKind: KeyKind children, ArrayKind: values
	children []*Node
	keys     map[string]*Node

	name  string
	value *Node

	data    []byte
	date    time.Time
	str     string
	integer int64
	real    float64
	boolean bool

	freed bool
}

func NewDictionary() (*Node, error) {
	n, err := newNode(DictKind)
	if err != nil {
		return nil, err
	}
	n.keys = map[string]*Node{}
	return n, nil
}

func NewArray() (*Node, error) {
	return newNode(ArrayKind)
}

// NewData creates a data node holding a copy of b.  A nil buffer is
// rejected; use an empty slice for empty data.
func NewData(b []byte) (*Node, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil data buffer", ErrInvalidArgument)
	}
	n, err := newNode(DataKind)
	if err != nil {
		return nil, err
	}
	n.data = make([]byte, len(b))
	copy(n.data, b)
	return n, nil
}

func NewDate(t time.Time) (*Node, error) {
	n, err := newNode(DateKind)
	if err != nil {
		return nil, err
	}
	n.date = t
	return n, nil
}

func NewString(s string) (*Node, error) {
	n, err := newNode(StringKind)
	if err != nil {
		return nil, err
	}
	n.str = s
	return n, nil
}

func NewStringf(format string, args ...any) (*Node, error) {
	return NewString(fmt.Sprintf(format, args...))
}

func NewInteger(v int64) (*Node, error) {
	n, err := newNode(IntegerKind)
	if err != nil {
		return nil, err
	}
	n.integer = v
	return n, nil
}

func NewReal(v float64) (*Node, error) {
	n, err := newNode(RealKind)
	if err != nil {
		return nil, err
	}
	n.real = v
	return n, nil
}

func NewBoolean(v bool) (*Node, error) {
	n, err := newNode(BooleanKind)
	if err != nil {
		return nil, err
	}
	n.boolean = v
	return n, nil
}

// NewKey creates a free standing key owning value.  Free standing keys
// may be collected in an array and merged into a dictionary with Update.
// Such arrays have no serialized form: the encoders reject a key which is
// not a dictionary entry.
func NewKey(name string, value *Node) (*Node, error) {
	if err := checkValue(value); err != nil {
		return nil, err
	}
	k, err := newNode(KeyKind)
	if err != nil {
		return nil, err
	}
	k.name = name
	k.link(value)
	return k, nil
}

// Must panics if err is not nil and otherwise returns n.
func Must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}

// IsKind reports whether n is a node of kind k.  It is false for a nil
// node.
func IsKind(n *Node, k Kind) bool {
	if n == nil {
		return false
	}
	return n.kind == k
}

// Is is the method form of IsKind and may be called on a nil node.
func (n *Node) Is(k Kind) bool {
	return IsKind(n, k)
}

func (n *Node) Kind() Kind {
	if n == nil {
		return UnknownKind
	}
	return n.kind
}

// Parent returns the node owning n, or nil for a free standing node.
func (n *Node) Parent() *Node {
	return n.parent
}

// ParentIndex returns the position of n within its parent's children.
// It is meaningless for values of keys and for free standing nodes.
func (n *Node) ParentIndex() int {
	return n.index
}

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Freed reports whether n has been released by Free.
func (n *Node) Freed() bool {
	return n.freed
}

// Len returns the number of children of a dictionary or array, and zero
// for every other kind.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Name returns the name of a key.
func (n *Node) Name() string {
	return n.name
}

// Value returns the value owned by a key.
func (n *Node) Value() *Node {
	return n.value
}

// Data returns the bytes of a data node.  The slice is owned by the node.
func (n *Node) Data() []byte {
	return n.data
}

func (n *Node) Date() time.Time {
	return n.date
}

// Text returns the contents of a string node.
func (n *Node) Text() string {
	return n.str
}

func (n *Node) Int() int64 {
	return n.integer
}

func (n *Node) Real() float64 {
	return n.real
}

func (n *Node) Bool() bool {
	return n.boolean
}

func (n *Node) checkLive() error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidArgument)
	}
	if n.freed {
		return fmt.Errorf("%w: node has been freed", ErrInvalidArgument)
	}
	return nil
}

func (n *Node) checkKind(k Kind) error {
	if err := n.checkLive(); err != nil {
		return err
	}
	if n.kind != k {
		return fmt.Errorf("%w: expected %s, got %s", ErrWrongKind, k, n.kind)
	}
	return nil
}

// checkValue verifies v may become the value of a key.
func checkValue(v *Node) error {
	if err := v.checkLive(); err != nil {
		return err
	}
	if v.parent != nil {
		return fmt.Errorf("%w: %s node has a parent", ErrAlreadyOwned, v.kind)
	}
	if v.kind == KeyKind {
		return fmt.Errorf("%w: a key cannot hold a key", ErrWrongKind)
	}
	return nil
}

// checkAttach verifies v may be attached below p.
func checkAttach(p, v *Node) error {
	if err := v.checkLive(); err != nil {
		return err
	}
	if v.parent != nil {
		return fmt.Errorf("%w: %s node has a parent", ErrAlreadyOwned, v.kind)
	}
	if p == v {
		return fmt.Errorf("%w: node would become its own descendant", ErrInvalidArgument)
	}
	if len(v.children) == 0 && v.value == nil {
		// v has nothing below it, so p cannot be
		return nil
	}
	for a := p.parent; a != nil; a = a.parent {
		if a == v {
			return fmt.Errorf("%w: node would become its own descendant", ErrInvalidArgument)
		}
	}
	return nil
}

// link makes v the value of key k.
func (k *Node) link(v *Node) {
	k.value = v
	if v != nil {
		v.parent = k
		v.index = 0
	}
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.kind {
	case DictKind, ArrayKind:
		return fmt.Sprintf("%s(%d)", n.kind, len(n.children))
	case KeyKind:
		return fmt.Sprintf("key(%q)", n.name)
	case DataKind:
		return fmt.Sprintf("data(%d)", len(n.data))
	case DateKind:
		return "date(" + n.date.Format(time.RFC3339) + ")"
	case StringKind:
		return fmt.Sprintf("string(%q)", n.str)
	case IntegerKind:
		return fmt.Sprintf("integer(%d)", n.integer)
	case RealKind:
		return fmt.Sprintf("real(%g)", n.real)
	case BooleanKind:
		return fmt.Sprintf("boolean(%t)", n.boolean)
	default:
		return "unknown"
	}
}
