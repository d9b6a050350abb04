package ir

import "fmt"

// Append attaches v at the tail of the array a.
func (a *Node) Append(v *Node) error {
	if err := a.checkAttachable(v); err != nil {
		return err
	}
	a.appendChild(v)
	return nil
}

// Insert attaches v at position i, 0 <= i <= a.Len().  Inserting at
// a.Len() is the same as Append.
func (a *Node) Insert(i int, v *Node) error {
	if err := a.checkAttachable(v); err != nil {
		return err
	}
	if i < 0 || i > len(a.children) {
		return fmt.Errorf("%w: insert at %d (len %d)", ErrOutOfRange, i, len(a.children))
	}
	a.insertChild(i, v)
	return nil
}

// PopAt detaches and returns the element at index i.  The caller owns the
// result.
func (a *Node) PopAt(i int) (*Node, error) {
	if err := a.checkKind(ArrayKind); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(a.children) {
		return nil, fmt.Errorf("%w: index %d (len %d)", ErrOutOfRange, i, len(a.children))
	}
	c := a.children[i]
	a.removeChild(c)
	return c, nil
}

// DeleteAt frees the element at index i.
func (a *Node) DeleteAt(i int) error {
	c, err := a.PopAt(i)
	if err != nil {
		return err
	}
	return c.Free()
}

// At returns the element at index i, or nil if i is out of range.
func (a *Node) At(i int) *Node {
	if !a.Is(ArrayKind) || i < 0 || i >= len(a.children) {
		return nil
	}
	return a.children[i]
}

func (a *Node) checkAttachable(v *Node) error {
	if err := a.checkLive(); err != nil {
		return err
	}
	if err := v.checkLive(); err != nil {
		return err
	}
	if err := a.checkKind(ArrayKind); err != nil {
		return err
	}
	return checkAttach(a, v)
}
