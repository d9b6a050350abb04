package mergeop

import (
	"errors"
	"testing"

	"github.com/signadot/plist-format/go-plist/encode"
	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

func noLeaks(t *testing.T) {
	t.Helper()
	live := ir.Live()
	t.Cleanup(func() {
		if n := ir.Live(); n != live {
			t.Errorf("%d nodes leaked", n-live)
		}
	})
}

func TestApply(t *testing.T) {
	noLeaks(t)
	for _, c := range []struct {
		doc, patch, want string
	}{
		{
			doc:   `{"a":1;"b":(1,2,3);"d":<0102>;}`,
			patch: `({"op":"update";"value":{"a":2;"c":"x";};},{"op":"delete";"args":("$.b[0]");})`,
			want:  `{"b":(2,3);"d":<0102>;"a":2;"c":"x";}`,
		},
		{
			doc:   `{"a":1;"b":(1,2);}`,
			patch: `{"op":"json-patch";"value":({"op":"add";"path":"/b/-";"value":3;},{"op":"remove";"path":"/a";});}`,
			want:  `{"b":(1,2,3);}`,
		},
		{
			doc:   `{"a":1;"b":{"c":2;};}`,
			patch: `{"op":"merge-patch";"value":{"b":{"d":3;};};}`,
			want:  `{"a":1;"b":{"c":2;"d":3;};}`,
		},
		{
			doc:   `(1,2)`,
			patch: `{"op":"replace";"value":{"r":true;};}`,
			want:  `{"r":true;}`,
		},
		{
			doc:   `{"a":(1,{"x":1;"y":2;});}`,
			patch: `{"op":"delete";"args":("$.a[1].x","$.a[0]");}`,
			want:  `{"a":({"y":2;});}`,
		},
		{
			doc:   `{"a":1;}`,
			patch: `()`,
			want:  `{"a":1;}`,
		},
	} {
		doc := mustParse(t, c.doc)
		patch := mustParse(t, c.patch)
		want := mustParse(t, c.want)
		before := encode.MustString(doc)
		got, err := Apply(doc, patch)
		if err != nil {
			t.Errorf("%s: %v", c.patch, err)
		} else {
			if !ir.Equal(got, want) {
				t.Errorf("%s: got %s want %s", c.patch, encode.MustString(got, encode.EncodeWire(true)), c.want)
			}
			got.Free()
		}
		if after := encode.MustString(doc); after != before {
			t.Errorf("%s: document changed to %s", c.patch, after)
		}
		doc.Free()
		patch.Free()
		want.Free()
	}
}

func TestApplyErrors(t *testing.T) {
	noLeaks(t)
	for _, c := range []struct {
		doc, patch string
		// nil accepts any error
		err error
	}{
		{`{}`, `{"op":"frobnicate";}`, ErrUnknownOp},
		{`{}`, `"update"`, ErrBadPatch},
		{`{}`, `{"op":1;}`, ErrBadPatch},
		{`{}`, `{"op":"update";"extra":1;"value":{};}`, ErrBadPatch},
		{`{}`, `{"op":"update";"args":"x";"value":{};}`, ErrBadPatch},
		{`{}`, `{"op":"delete";"args":(1);}`, ErrBadPatch},
		{`{}`, `{"op":"delete";}`, ErrOpArgs},
		{`{}`, `{"op":"delete";"args":("$[");}`, ErrOpArgs},
		{`{"a":1;}`, `{"op":"delete";"args":("$");}`, ErrOpArgs},
		{`{"a":1;}`, `{"op":"delete";"args":("$.b");}`, ir.ErrNotFound},
		{`(1)`, `{"op":"update";"value":{"a":1;};}`, ir.ErrWrongKind},
		{`{}`, `{"op":"update";"value":1;}`, ErrBadPatch},
		{`{}`, `{"op":"replace";}`, ErrBadPatch},
		{`{}`, `{"op":"replace";"args":("x");"value":1;}`, ErrOpArgs},
		{`{}`, `{"op":"json-patch";"value":{};}`, ErrBadPatch},
		{`{}`, `{"op":"json-patch";"value":(1);}`, ErrBadPatch},
		{`{"a":1;}`, `{"op":"json-patch";"value":({"op":"remove";"path":"/b";});}`, nil},
		{`{}`, `{"op":"merge-patch";"value":(1);}`, ErrBadPatch},
		{`{"a":1;}`, `({"op":"delete";"args":("$.a");},{"op":"delete";"args":("$.a");})`, ir.ErrNotFound},
	} {
		doc := mustParse(t, c.doc)
		patch := mustParse(t, c.patch)
		got, err := Apply(doc, patch)
		switch {
		case err == nil:
			t.Errorf("%s: no error", c.patch)
		case c.err != nil && !errors.Is(err, c.err):
			t.Errorf("%s: got %v want %v", c.patch, err, c.err)
		}
		if got != nil {
			t.Errorf("%s: got a result", c.patch)
			got.Free()
		}
		doc.Free()
		patch.Free()
	}
}

func TestSymbols(t *testing.T) {
	var names []string
	for _, s := range Symbols() {
		names = append(names, s.String())
	}
	want := []string{"delete", "json-patch", "merge-patch", "replace", "update"}
	if len(names) != len(want) {
		t.Fatalf("got %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("got %v want %v", names, want)
		}
	}
	if err := Register(Update()); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("got %v", err)
	}
}
