package ir

import (
	"fmt"
	"log/slog"
	"slices"
)

// appendChild links c at the tail of the container p.
func (p *Node) appendChild(c *Node) {
	c.parent = p
	c.index = len(p.children)
	p.children = append(p.children, c)
	if p.kind == DictKind {
		p.keys[c.name] = c
	}
}

func (p *Node) insertChild(i int, c *Node) {
	p.children = slices.Insert(p.children, i, c)
	c.parent = p
	p.reindex(i)
	if p.kind == DictKind {
		p.keys[c.name] = c
	}
}

func (p *Node) removeChild(c *Node) {
	i := c.index
	p.children = slices.Delete(p.children, i, i+1)
	p.reindex(i)
	if p.kind == DictKind && p.keys[c.name] == c {
		delete(p.keys, c.name)
	}
	c.parent = nil
	c.index = 0
}

func (p *Node) reindex(from int) {
	for j := from; j < len(p.children); j++ {
		p.children[j].index = j
	}
}

// attachKey links the key k at the tail of the dictionary d, first
// freeing any key of the same name.
func (d *Node) attachKey(k *Node) error {
	if old := d.keys[k.name]; old != nil {
		if err := old.Free(); err != nil {
			return err
		}
	}
	d.appendChild(k)
	return nil
}

// linked reports whether c sits in p's children at its recorded index.
func (p *Node) linked(c *Node) bool {
	return c.index >= 0 && c.index < len(p.children) && p.children[c.index] == c
}

// detach unlinks n from its parent, if any.  A value detached from a key
// leaves the key in place with no value.
func (n *Node) detach() error {
	p := n.parent
	if p == nil {
		return nil
	}
	switch p.kind {
	case DictKind, ArrayKind:
		if !p.linked(n) {
			return corrupt(n, "not linked at its index in parent")
		}
		p.removeChild(n)
		return nil
	case KeyKind:
		if p.value != n {
			return corrupt(n, "parent key holds another value")
		}
		p.value = nil
		n.parent = nil
		return nil
	default:
		return corrupt(n, fmt.Sprintf("invalid parent kind %s", p.kind))
	}
}

// corrupt reports a broken ownership invariant.  These indicate a
// programming error, so they are logged at error level as well as
// returned.
func corrupt(n *Node, msg string) error {
	slog.Error("plist tree corrupt", "node", n.String(), "problem", msg)
	return fmt.Errorf("%w: %s node %s", ErrCorrupt, n.kind, msg)
}
