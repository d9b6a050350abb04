package ir

import (
	"errors"
	"testing"
	"time"
)

func TestConstructors(t *testing.T) {
	noLeaks(t)
	when := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	tests := []struct {
		node  *Node
		kind  Kind
		check func(*Node) bool
	}{
		{Must(NewDictionary()), DictKind, func(n *Node) bool { return n.Len() == 0 }},
		{Must(NewArray()), ArrayKind, func(n *Node) bool { return n.Len() == 0 }},
		{Must(NewData([]byte{1, 2})), DataKind, func(n *Node) bool { return len(n.Data()) == 2 }},
		{Must(NewData([]byte{})), DataKind, func(n *Node) bool { return len(n.Data()) == 0 }},
		{Must(NewDate(when)), DateKind, func(n *Node) bool { return n.Date().Equal(when) }},
		{Must(NewString("s")), StringKind, func(n *Node) bool { return n.Text() == "s" }},
		{Must(NewStringf("%d-%s", 4, "x")), StringKind, func(n *Node) bool { return n.Text() == "4-x" }},
		{Must(NewInteger(-7)), IntegerKind, func(n *Node) bool { return n.Int() == -7 }},
		{Must(NewReal(2.5)), RealKind, func(n *Node) bool { return n.Real() == 2.5 }},
		{Must(NewBoolean(true)), BooleanKind, func(n *Node) bool { return n.Bool() }},
	}
	for _, tt := range tests {
		if tt.node.Kind() != tt.kind {
			t.Errorf("got kind %s, want %s", tt.node.Kind(), tt.kind)
		}
		if tt.node.Parent() != nil {
			t.Errorf("%s: new node has a parent", tt.node)
		}
		if !tt.check(tt.node) {
			t.Errorf("%s: wrong payload", tt.node)
		}
		if err := tt.node.Free(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestNewDataCopies(t *testing.T) {
	noLeaks(t)
	b := []byte("abc")
	n := Must(NewData(b))
	defer n.Free()
	b[0] = 'x'
	if string(n.Data()) != "abc" {
		t.Errorf("data aliases caller buffer: %q", n.Data())
	}
	if _, err := NewData(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewData(nil): got %v", err)
	}
}

func TestNewKey(t *testing.T) {
	noLeaks(t)
	k := Must(NewKey("a", integer(1)))
	defer k.Free()
	if k.Name() != "a" || k.Value().Int() != 1 || k.Value().Parent() != k {
		t.Errorf("bad key %s -> %s", k, k.Value())
	}
	if _, err := NewKey("b", k); !errors.Is(err, ErrWrongKind) {
		t.Errorf("key of key: got %v", err)
	}
	if _, err := NewKey("b", k.Value()); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("owned value: got %v", err)
	}
	if _, err := NewKey("b", nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil value: got %v", err)
	}
}

func TestIsKind(t *testing.T) {
	var n *Node
	if IsKind(n, DictKind) || n.Is(UnknownKind) {
		t.Error("nil node has a kind")
	}
	if n.Kind() != UnknownKind || n.Len() != 0 {
		t.Error("nil node accessors")
	}
	s := str("x")
	defer s.Free()
	if !IsKind(s, StringKind) || s.Is(DataKind) {
		t.Error("string kind")
	}
}

func TestOutOfMemory(t *testing.T) {
	noLeaks(t)
	failAfter(t, 0)
	if _, err := NewDictionary(); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("got %v", err)
	}
	if _, err := NewData([]byte("x")); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("got %v", err)
	}
}

func TestRoot(t *testing.T) {
	d := sample()
	defer d.Free()
	x := d.Get("list").At(1).Get("x")
	if x.Root() != d {
		t.Error("root of nested value")
	}
	if d.Root() != d {
		t.Error("root of root")
	}
}
