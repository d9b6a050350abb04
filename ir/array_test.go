package ir

import (
	"errors"
	"testing"
)

func values(a *Node) []int64 {
	var res []int64
	for v := range a.All() {
		res = append(res, v.Int())
	}
	return res
}

func checkIndexes(t *testing.T, a *Node) {
	t.Helper()
	for i := 0; i < a.Len(); i++ {
		if c := a.At(i); c.ParentIndex() != i || c.Parent() != a {
			t.Errorf("element %d has index %d", i, c.ParentIndex())
		}
	}
}

func TestInsertEveryIndex(t *testing.T) {
	noLeaks(t)
	for i := 0; i <= 3; i++ {
		a := array(integer(0), integer(1), integer(2))
		v := integer(99)
		if err := a.Insert(i, v); err != nil {
			t.Fatalf("insert at %d: %v", i, err)
		}
		if a.Len() != 4 || a.At(i) != v {
			t.Errorf("insert at %d: got %v", i, values(a))
		}
		checkIndexes(t, a)
		a.Free()
	}
}

func TestInsertOutOfRange(t *testing.T) {
	noLeaks(t)
	a := array(integer(0), integer(1), integer(2))
	defer a.Free()
	v := integer(99)
	defer v.Free()
	for _, i := range []int{-1, 4, 100} {
		if err := a.Insert(i, v); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("insert at %d: got %v", i, err)
		}
	}
	if a.Len() != 3 || v.Parent() != nil {
		t.Error("failed insert changed array")
	}
}

func TestAppendErrors(t *testing.T) {
	noLeaks(t)
	a := array(integer(1))
	defer a.Free()
	b := array()
	defer b.Free()
	d := dict()
	defer d.Free()
	if err := b.Append(a.At(0)); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("owned: got %v", err)
	}
	v := integer(1)
	defer v.Free()
	if err := d.Append(v); !errors.Is(err, ErrWrongKind) {
		t.Errorf("dict: got %v", err)
	}
	if err := a.Append(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil: got %v", err)
	}
	if err := a.Append(a); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("self: got %v", err)
	}
	outer := dict("x", array())
	defer outer.Free()
	if err := outer.Get("x").Append(outer); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ancestor: got %v", err)
	}
	if a.Len() != 1 || b.Len() != 0 || outer.Get("x").Len() != 0 {
		t.Error("failed append changed an array")
	}
}

func TestPopAt(t *testing.T) {
	noLeaks(t)
	a := array(integer(0), integer(1), integer(2))
	defer a.Free()
	v, err := a.PopAt(1)
	if err != nil {
		t.Fatal(err)
	}
	if v.Int() != 1 || v.Parent() != nil {
		t.Errorf("popped %s", v)
	}
	v.Free()
	checkIndexes(t, a)
	if err := a.DeleteAt(0); err != nil {
		t.Fatal(err)
	}
	if got := values(a); len(got) != 1 || got[0] != 2 {
		t.Errorf("got %v", got)
	}
	checkIndexes(t, a)
	if _, err := a.PopAt(1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("pop past end: got %v", err)
	}
	if err := a.DeleteAt(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("delete -1: got %v", err)
	}
}
