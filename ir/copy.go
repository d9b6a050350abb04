package ir

// Copy returns a deep copy of the tree rooted at src.  The copy shares no
// nodes with src and has no parent.  src is not modified.
//
// If an allocation fails part way through, every node copied so far is
// freed and the error wraps ErrOutOfMemory.
func (src *Node) Copy() (*Node, error) {
	if err := src.checkLive(); err != nil {
		return nil, err
	}
	var root *Node
	// p is the copy of n's parent.
	n, p := src, (*Node)(nil)
	for {
		m, err := shallowCopy(n)
		if err != nil {
			root.Free()
			return nil, err
		}
		if p == nil {
			root = m
		} else {
			p.adopt(m)
		}
		if c := firstChild(n); c != nil {
			n, p = c, m
			continue
		}
		for {
			if n == src {
				return root, nil
			}
			if s := nextSibling(n); s != nil {
				n = s
				break
			}
			n, p = n.parent, p.parent
		}
	}
}

// shallowCopy copies the kind and payload of n, but not its children.
func shallowCopy(n *Node) (*Node, error) {
	m, err := newNode(n.kind)
	if err != nil {
		return nil, err
	}
	switch n.kind {
	case DictKind:
		m.keys = make(map[string]*Node, len(n.children))
	case KeyKind:
		m.name = n.name
	case DataKind:
		m.data = make([]byte, len(n.data))
		copy(m.data, n.data)
	case DateKind:
		m.date = n.date
	case StringKind:
		m.str = n.str
	case IntegerKind:
		m.integer = n.integer
	case RealKind:
		m.real = n.real
	case BooleanKind:
		m.boolean = n.boolean
	}
	return m, nil
}

// adopt links a freshly copied node below p.  Names are known to be unique.
func (p *Node) adopt(c *Node) {
	if p.kind == KeyKind {
		p.link(c)
		return
	}
	p.appendChild(c)
}
