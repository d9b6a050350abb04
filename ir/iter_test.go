package ir

import (
	"slices"
	"testing"
)

func TestIterDeleteCurrent(t *testing.T) {
	noLeaks(t)
	tests := []struct {
		name   string
		delete []string
		remain []string
	}{
		{"none", nil, []string{"a", "b", "c", "d", "e"}},
		{"all", []string{"a", "b", "c", "d", "e"}, nil},
		{"some", []string{"b", "d"}, []string{"a", "c", "e"}},
		{"first and last", []string{"a", "e"}, []string{"b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := dict("a", integer(0), "b", integer(1), "c", integer(2), "d", integer(3), "e", integer(4))
			defer d.Free()
			var seen []string
			for k, it := d.First(); k != nil; k = it.Next() {
				seen = append(seen, k.Name())
				if slices.Contains(tt.delete, k.Name()) {
					if err := d.Delete(k.Name()); err != nil {
						t.Fatal(err)
					}
				}
			}
			if !slices.Equal(seen, []string{"a", "b", "c", "d", "e"}) {
				t.Errorf("iteration saw %v", seen)
			}
			if got := keyNames(d); !slices.Equal(got, tt.remain) {
				t.Errorf("remaining %v, want %v", got, tt.remain)
			}
		})
	}
}

func TestIterPopCurrent(t *testing.T) {
	noLeaks(t)
	a := array(integer(0), integer(1), integer(2))
	defer a.Free()
	var seen []int64
	for v, it := a.First(); v != nil; v = it.Next() {
		seen = append(seen, v.Int())
		p, err := a.PopAt(v.ParentIndex())
		if err != nil {
			t.Fatal(err)
		}
		p.Free()
	}
	if !slices.Equal(seen, []int64{0, 1, 2}) || a.Len() != 0 {
		t.Errorf("saw %v, %d left", seen, a.Len())
	}
}

func TestIterNonContainer(t *testing.T) {
	s := str("x")
	defer s.Free()
	n, it := s.First()
	if n != nil || it.Next() != nil {
		t.Error("string is not iterable")
	}
	empty := array()
	defer empty.Free()
	if n, _ := empty.First(); n != nil {
		t.Error("empty array")
	}
}

func TestAllBreak(t *testing.T) {
	a := array(integer(0), integer(1), integer(2))
	defer a.Free()
	var seen []int64
	for v := range a.All() {
		if v.Int() == 1 {
			break
		}
		seen = append(seen, v.Int())
	}
	if !slices.Equal(seen, []int64{0}) {
		t.Errorf("got %v", seen)
	}
}
