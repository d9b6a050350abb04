package ir

import "iter"

// Iter iterates over the entries of a dictionary (its keys) or the
// elements of an array, in insertion order.
//
// The element following the one last returned is looked up before that
// element is handed out, so the current element may be deleted or popped
// during iteration.  Removing any other element is not supported.
type Iter struct {
	container *Node
	next      *Node
}

// First returns the first entry of the container c together with an
// iterator positioned after it.  For an empty container, or a node which
// is not a container, the entry is nil and the iterator is exhausted.
func (c *Node) First() (*Node, *Iter) {
	it := &Iter{container: c}
	if c == nil || c.freed || !c.kind.IsContainer() {
		return nil, it
	}
	it.next = firstChild(c)
	return it.Next(), it
}

// Next returns the next entry, or nil at the end.
func (it *Iter) Next() *Node {
	n := it.next
	if n == nil {
		return nil
	}
	if n.freed || n.parent != it.container {
		it.next = nil
		return nil
	}
	it.next = nextSibling(n)
	return n
}

// All returns a sequence over the entries of c with the same removal
// guarantees as Iter.
func (c *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n, it := c.First(); n != nil; n = it.Next() {
			if !yield(n) {
				return
			}
		}
	}
}
