package ir

import (
	"errors"
	"slices"
	"testing"
)

func TestSetReplaces(t *testing.T) {
	noLeaks(t)
	d := dict("a", integer(1), "b", integer(2))
	defer d.Free()
	v1 := d.Get("a")
	v2 := integer(3)
	if err := d.Set("a", v2); err != nil {
		t.Fatal(err)
	}
	if !v1.Freed() {
		t.Error("replaced value not freed")
	}
	if got := keyNames(d); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("replaced entry should move to the tail, got %v", got)
	}
	if !d.HasKey("a") {
		t.Error("missing key a")
	}
	v, err := d.Pop("a")
	if err != nil {
		t.Fatal(err)
	}
	defer v.Free()
	if v != v2 || v.Parent() != nil || v.Int() != 3 {
		t.Errorf("pop returned %s with parent %v", v, v.Parent())
	}
	if d.HasKey("a") || d.Len() != 1 {
		t.Errorf("after pop: %v", keyNames(d))
	}
}

func TestSetErrors(t *testing.T) {
	noLeaks(t)
	d := dict("a", integer(1))
	defer d.Free()
	other := dict()
	defer other.Free()
	a := array()
	defer a.Free()
	v := integer(5)
	defer v.Free()
	k := Must(NewKey("k", integer(0)))
	defer k.Free()

	tests := []struct {
		name string
		err  error
		fn   func() error
	}{
		{"nil dict", ErrInvalidArgument, func() error { return (*Node)(nil).Set("x", v) }},
		{"nil value", ErrInvalidArgument, func() error { return d.Set("x", nil) }},
		{"not a dict", ErrWrongKind, func() error { return a.Set("x", v) }},
		{"key value", ErrWrongKind, func() error { return other.Set("x", k) }},
		{"owned value", ErrAlreadyOwned, func() error { return other.Set("x", d.Get("a")) }},
		{"self", ErrInvalidArgument, func() error { return d.Set("x", d) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
		})
	}
	if other.Len() != 0 || d.Len() != 1 || d.Get("a").Int() != 1 {
		t.Error("failed set changed a tree")
	}
	if v.Parent() != nil {
		t.Error("failed set attached value")
	}
}

func TestDelete(t *testing.T) {
	noLeaks(t)
	empty := dict()
	defer empty.Free()
	if err := empty.Delete("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty dict: got %v", err)
	}
	d := dict("a", integer(1), "b", integer(2))
	defer d.Free()
	if err := d.Delete("c"); !errors.Is(err, ErrNotFound) {
		t.Errorf("absent key: got %v", err)
	}
	if d.Len() != 2 {
		t.Error("failed delete changed dict")
	}
	if err := d.Delete("a"); err != nil {
		t.Fatal(err)
	}
	if d.HasKey("a") || d.Len() != 1 {
		t.Errorf("after delete: %v", keyNames(d))
	}
	if _, err := d.Pop("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("pop absent: got %v", err)
	}
}

func TestAddKey(t *testing.T) {
	noLeaks(t)
	d := dict("a", integer(1))
	defer d.Free()
	k, err := d.AddKey("b")
	if err != nil {
		t.Fatal(err)
	}
	if k.Value() != nil || !d.HasKey("b") || d.Get("b") != nil {
		t.Error("pending key")
	}
	if err := k.SetValue(str("x")); err != nil {
		t.Fatal(err)
	}
	old := k.Value()
	if err := k.SetValue(str("y")); err != nil {
		t.Fatal(err)
	}
	if !old.Freed() || d.Get("b").Text() != "y" {
		t.Error("SetValue did not replace")
	}
	z := str("z")
	defer z.Free()
	if err := d.Get("a").SetValue(z); !errors.Is(err, ErrWrongKind) {
		t.Errorf("SetValue on integer: got %v", err)
	}
	if z.Parent() != nil {
		t.Error("rejected value was attached")
	}
}

func TestUpdate(t *testing.T) {
	noLeaks(t)
	tests := []struct {
		name  string
		other func() *Node
		keys  []string
	}{
		{"dict", func() *Node { return dict("b", integer(20), "c", integer(30)) }, []string{"a", "b", "c"}},
		{"key", func() *Node { return Must(NewKey("a", integer(10))) }, []string{"b", "a"}},
		{
			"array of keys",
			func() *Node {
				return array(Must(NewKey("c", integer(3))), Must(NewKey("a", integer(4))))
			},
			[]string{"b", "c", "a"},
		},
		{"empty dict", func() *Node { return dict() }, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := dict("a", integer(1), "b", integer(2))
			defer d.Free()
			other := tt.other()
			defer other.Free()
			snap := Must(other.Copy())
			defer snap.Free()
			if err := d.Update(other); err != nil {
				t.Fatal(err)
			}
			if got := keyNames(d); !slices.Equal(got, tt.keys) {
				t.Errorf("got keys %v, want %v", got, tt.keys)
			}
			if !Equal(other, snap) {
				t.Error("update changed its source")
			}
			for k := range d.All() {
				if k.Value().Root() != d {
					t.Errorf("%s not owned by dict", k)
				}
			}
		})
	}
}

func TestUpdatePermission(t *testing.T) {
	noLeaks(t)
	d := dict("a", integer(1))
	defer d.Free()
	for _, other := range []*Node{
		integer(1),
		str("a"),
		array(Must(NewKey("a", integer(2))), integer(3)),
	} {
		if err := d.Update(other); !errors.Is(err, ErrPermission) {
			t.Errorf("update from %s: got %v", other, err)
		}
		other.Free()
	}
	if d.Len() != 1 || d.Get("a").Int() != 1 {
		t.Error("failed update changed dict")
	}
	a := array()
	defer a.Free()
	if err := a.Update(d); !errors.Is(err, ErrWrongKind) {
		t.Errorf("update of array: got %v", err)
	}
}

func TestUpdateRollback(t *testing.T) {
	noLeaks(t)
	d := dict("a", integer(1))
	defer d.Free()
	other := dict("b", array(integer(1), integer(2)), "c", integer(3))
	defer other.Free()
	snap := Must(d.Copy())
	defer snap.Free()
	// b's key, array and elements copy, then c's key fails.
	failAfter(t, 4)
	if err := d.Update(other); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("got %v", err)
	}
	allocHook = nil
	if !Equal(d, snap) {
		t.Error("failed update changed dict")
	}
}

func TestUpdateCorrupt(t *testing.T) {
	noLeaks(t)
	d := dict("a", integer(1), "c", integer(3))
	defer d.Free()
	other := dict("b", integer(2), "a", integer(9))
	defer other.Free()
	a := d.KeyNode("a")
	a.index = 1
	if err := d.Update(other); !errors.Is(err, ErrCorrupt) {
		t.Errorf("got %v", err)
	}
	a.index = 0
	if d.HasKey("b") || d.Len() != 2 || d.Get("a").Int() != 1 {
		t.Errorf("corrupt update changed dict: %v", keyNames(d))
	}
}

func TestUpdateSelf(t *testing.T) {
	noLeaks(t)
	d := dict("a", integer(1), "b", array(integer(2)))
	defer d.Free()
	snap := Must(d.Copy())
	defer snap.Free()
	if err := d.Update(d); err != nil {
		t.Fatal(err)
	}
	if !Equal(d, snap) {
		t.Error("self update changed dict")
	}
}
