package ir

import "fmt"

// Free detaches n from its parent and releases n and every node below it.
//
// When the parent is a dictionary or array the entry is unlinked from it.
// When the parent is a key only the key's value reference is cleared; the
// key itself stays in its dictionary.
//
// Teardown uses an explicit worklist, never the call stack, so arbitrarily
// deep trees are freed in time proportional to their size.  Freeing a nil
// node does nothing.  Freeing a node twice fails with ErrInvalidArgument.
func (n *Node) Free() error {
	if n == nil {
		return nil
	}
	if n.freed {
		return fmt.Errorf("%w: node already freed", ErrInvalidArgument)
	}
	if err := n.detach(); err != nil {
		return err
	}
	work := []*Node{n}
	for len(work) != 0 {
		c := work[len(work)-1]
		work = work[:len(work)-1]
		switch c.kind {
		case DictKind, ArrayKind:
			work = append(work, c.children...)
		case KeyKind:
			if c.value != nil {
				work = append(work, c.value)
			}
		}
		release(c)
	}
	return nil
}
