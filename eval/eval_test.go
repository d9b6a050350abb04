package eval

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

func wire(n *ir.Node) string {
	return encode.MustString(n, encode.EncodeWire(true))
}

func TestEval(t *testing.T) {
	noLeaks(t)
	doc := mustParse(t, `{"a":1;"b":("x","y");"c":{"d":2.5;};}`)
	defer doc.Free()
	for _, c := range []struct {
		at   *ir.Node
		src  string
		env  Env
		want string
	}{
		{doc, `doc.a + 1`, nil, `2`},
		{doc, `len(doc.b)`, nil, `2`},
		{doc, `doc.c.d * 2`, nil, `5.0`},
		{doc, `getpath("$.b[1]")`, nil, `"y"`},
		{doc, `listpath("$.b[*]")`, nil, `("x","y")`},
		{doc.Get("c"), `whereami()`, nil, `"$.c"`},
		{doc.Get("c"), `doc.a`, nil, `1`},
		{doc, `x * 2`, Env{"x": 5}, `10`},
		{doc, `{"k": doc.a > 0}`, nil, `{"k":true;}`},
		{doc, `upper(doc.b[0])`, nil, `"X"`},
	} {
		got, err := Eval(c.at, c.src, c.env)
		if err != nil {
			t.Errorf("%s: %v", c.src, err)
			continue
		}
		if w := wire(got); w != c.want {
			t.Errorf("%s: got %s want %s", c.src, w, c.want)
		}
		got.Free()
	}
}

func TestEvalErrors(t *testing.T) {
	noLeaks(t)
	doc := mustParse(t, `{"a":1;}`)
	defer doc.Free()
	for _, src := range []string{
		`1 +`,
		`nil`,
		`getpath("$.nope")`,
		`nosuch(1)`,
		`[1, nil]`,
	} {
		got, err := Eval(doc, src, nil)
		if !errors.Is(err, ErrEval) {
			t.Errorf("%s: got %v", src, err)
		}
		if got != nil {
			t.Errorf("%s: got a result", src)
			got.Free()
		}
	}
}

func TestExpandEnv(t *testing.T) {
	noLeaks(t)
	t.Setenv("PLIST_EVAL_TEST", "hi")
	doc := mustParse(t, `{"a":1;"s":"a is $[doc.a]!";"r":".[doc.a + 1]";"l":("x",".[getpath('$.a')]",<00>);"p":"$[whereami()] $[getenv('PLIST_EVAL_TEST')]";"u":"$[open";"n":{"m":".[doc.l]";};}`)
	defer doc.Free()
	before := wire(doc)
	got, err := ExpandEnv(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer got.Free()
	want := `{"a":1;"s":"a is 1!";"r":2;"l":("x",1,<00>);"p":"$.p hi";"u":"$[open";"n":{"m":("x",".[getpath('$.a')]",<00>);};}`
	if w := wire(got); w != want {
		t.Errorf("got %s\nwant %s", w, want)
	}
	if after := wire(doc); after != before {
		t.Errorf("document changed to %s", after)
	}
}

func TestExpandEnvRoot(t *testing.T) {
	noLeaks(t)
	s := ir.Must(ir.NewString(".[1 + 1]"))
	defer s.Free()
	got, err := ExpandEnv(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer got.Free()
	if !got.Is(ir.IntegerKind) || got.Int() != 2 {
		t.Errorf("got %s", got)
	}
}

func TestExpandEnvError(t *testing.T) {
	noLeaks(t)
	doc := mustParse(t, `{"a":("$[1 +]");}`)
	defer doc.Free()
	got, err := ExpandEnv(doc, nil)
	if !errors.Is(err, ErrEval) {
		t.Errorf("got %v", err)
	}
	if got != nil {
		t.Error("got a result")
		got.Free()
	}
}

func TestExpandString(t *testing.T) {
	noLeaks(t)
	doc := mustParse(t, `{"l":(1,2);}`)
	defer doc.Free()
	for _, c := range []struct {
		in, want string
	}{
		{`plain`, `plain`},
		{`v=$['x\]']`, `v=x]`},
		{`$[doc.l]`, `(1,2)`},
		{`$[1.5]$[true]`, `1.5true`},
		{`$`, `$`},
		{`a$[`, `a$[`},
	} {
		got, err := ExpandString(doc, c.in, nil)
		if err != nil {
			t.Errorf("%s: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %q want %q", c.in, got, c.want)
		}
	}
}

func TestToValue(t *testing.T) {
	noLeaks(t)
	doc := mustParse(t, `{"a":(1,"s",<01>);}`)
	defer doc.Free()
	v, err := ToValue(doc)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("got %T", v)
	}
	a, ok := m["a"].([]any)
	if !ok || len(a) != 3 {
		t.Fatalf("got %#v", m["a"])
	}
	if a[0] != int64(1) || a[1] != "s" {
		t.Errorf("got %#v", a)
	}
	if b, ok := a[2].([]byte); !ok || len(b) != 1 || b[0] != 1 {
		t.Errorf("got %#v", a[2])
	}
}
