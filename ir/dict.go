package ir

import "fmt"

// Set attaches value to the dictionary d under name.  An existing entry
// with the same name is freed first and the new entry is appended at the
// tail, so it does not keep the position of the entry it replaces.
//
// On success d owns value.  value must not already have a parent.
func (d *Node) Set(name string, value *Node) error {
	if err := d.checkLive(); err != nil {
		return err
	}
	if err := value.checkLive(); err != nil {
		return err
	}
	if err := d.checkKind(DictKind); err != nil {
		return err
	}
	if err := checkValue(value); err != nil {
		return err
	}
	if err := checkAttach(d, value); err != nil {
		return err
	}
	k, err := newNode(KeyKind)
	if err != nil {
		return err
	}
	k.name = name
	k.link(value)
	if err := d.attachKey(k); err != nil {
		k.value = nil
		value.parent = nil
		release(k)
		return err
	}
	return nil
}

// AddKey attaches a key with no value yet under name and returns it.  The
// value is supplied later with SetValue.  Replacement follows Set.
func (d *Node) AddKey(name string) (*Node, error) {
	if err := d.checkKind(DictKind); err != nil {
		return nil, err
	}
	k, err := newNode(KeyKind)
	if err != nil {
		return nil, err
	}
	k.name = name
	if err := d.attachKey(k); err != nil {
		release(k)
		return nil, err
	}
	return k, nil
}

// SetValue makes v the value of the key k, freeing any previous value.
func (k *Node) SetValue(v *Node) error {
	if err := k.checkLive(); err != nil {
		return err
	}
	if err := v.checkLive(); err != nil {
		return err
	}
	if err := k.checkKind(KeyKind); err != nil {
		return err
	}
	if err := checkValue(v); err != nil {
		return err
	}
	if err := checkAttach(k, v); err != nil {
		return err
	}
	if k.value != nil {
		if err := k.value.Free(); err != nil {
			return err
		}
	}
	k.link(v)
	return nil
}

// Pop detaches the value stored under name and returns it.  The caller
// owns the returned node.
func (d *Node) Pop(name string) (*Node, error) {
	if err := d.checkKind(DictKind); err != nil {
		return nil, err
	}
	k := d.keys[name]
	if k == nil {
		return nil, fmt.Errorf("%w: key %q", ErrNotFound, name)
	}
	v := k.value
	if v != nil {
		k.value = nil
		v.parent = nil
	}
	if err := k.Free(); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: key %q has no value", ErrNotFound, name)
	}
	return v, nil
}

// Delete frees the entry stored under name.  Deleting an absent name fails
// with ErrNotFound, as Pop does.
func (d *Node) Delete(name string) error {
	if err := d.checkKind(DictKind); err != nil {
		return err
	}
	k := d.keys[name]
	if k == nil {
		return fmt.Errorf("%w: key %q", ErrNotFound, name)
	}
	return k.Free()
}

func (d *Node) HasKey(name string) bool {
	if !d.Is(DictKind) || d.freed {
		return false
	}
	return d.keys[name] != nil
}

// KeyNode returns the key stored under name, or nil.
func (d *Node) KeyNode(name string) *Node {
	if !d.Is(DictKind) {
		return nil
	}
	return d.keys[name]
}

// Get returns the value stored under name, or nil.  The dictionary keeps
// ownership of the result.
func (d *Node) Get(name string) *Node {
	k := d.KeyNode(name)
	if k == nil {
		return nil
	}
	return k.value
}

// Update merges entries into the dictionary d in the manner of an
// associative array update.  other may be a dictionary, a single key or an
// array of keys.  Every merged entry is a deep copy, so other is left
// untouched, and insertion follows Set.  If any copy fails, or a key to be
// replaced is not properly linked, d is unchanged.
func (d *Node) Update(other *Node) error {
	if err := d.checkLive(); err != nil {
		return err
	}
	if err := other.checkLive(); err != nil {
		return err
	}
	if err := d.checkKind(DictKind); err != nil {
		return err
	}
	var src []*Node
	switch other.kind {
	case DictKind:
		src = other.children
	case KeyKind:
		src = []*Node{other}
	case ArrayKind:
		for i, c := range other.children {
			if c.kind != KeyKind {
				return fmt.Errorf("%w: update from array element %d of kind %s", ErrPermission, i, c.kind)
			}
		}
		src = other.children
	default:
		return fmt.Errorf("%w: update from %s", ErrPermission, other.kind)
	}
	copies := make([]*Node, 0, len(src))
	for _, k := range src {
		c, err := k.Copy()
		if err != nil {
			for _, c := range copies {
				c.Free()
			}
			return err
		}
		copies = append(copies, c)
	}
	for _, c := range copies {
		if old := d.keys[c.name]; old != nil && (old.freed || old.parent != d || !d.linked(old)) {
			for _, c := range copies {
				c.Free()
			}
			return corrupt(old, "not linked at its index in parent")
		}
	}
	for i, c := range copies {
		if err := d.attachKey(c); err != nil {
			for _, c := range copies[i:] {
				c.Free()
			}
			return err
		}
	}
	return nil
}
