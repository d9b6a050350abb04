package ir

// firstChild returns the first node owned by n in traversal order: the
// first entry of a container or the value of a key.
func firstChild(n *Node) *Node {
	switch n.kind {
	case DictKind, ArrayKind:
		if len(n.children) != 0 {
			return n.children[0]
		}
	case KeyKind:
		return n.value
	}
	return nil
}

// nextSibling returns the node following n in its parent, or nil.
func nextSibling(n *Node) *Node {
	p := n.parent
	if p == nil || p.kind == KeyKind {
		return nil
	}
	if i := n.index + 1; i < len(p.children) {
		return p.children[i]
	}
	return nil
}

// Visit walks the tree rooted at y depth first.  f is called for each node
// before its children with isPost false, and after them with isPost true.
// Children are visited only when the pre-order call returns true.  Keys
// of a dictionary are visited, and the value of a key is its only child.
//
// The walk ascends through parent links and so uses constant stack space
// whatever the depth of the tree.  f must not detach or free nodes other
// than leaves it has just been called on in post order.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	if err := y.checkLive(); err != nil {
		return err
	}
	n := y
	for {
		dive, err := f(n, false)
		if err != nil {
			return err
		}
		if dive {
			if c := firstChild(n); c != nil {
				n = c
				continue
			}
		}
		for {
			if _, err := f(n, true); err != nil {
				return err
			}
			if n == y {
				return nil
			}
			if s := nextSibling(n); s != nil {
				n = s
				break
			}
			n = n.parent
		}
	}
}
