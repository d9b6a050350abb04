package ir

import (
	"testing"
	"time"
)

func dict(kvs ...any) *Node {
	d := Must(NewDictionary())
	for i := 0; i < len(kvs); i += 2 {
		if err := d.Set(kvs[i].(string), kvs[i+1].(*Node)); err != nil {
			panic(err)
		}
	}
	return d
}

func array(vs ...*Node) *Node {
	a := Must(NewArray())
	for _, v := range vs {
		if err := a.Append(v); err != nil {
			panic(err)
		}
	}
	return a
}

func integer(i int64) *Node { return Must(NewInteger(i)) }
func str(s string) *Node    { return Must(NewString(s)) }

// sample returns a tree using every kind.
func sample() *Node {
	return dict(
		"name", str("plist"),
		"count", integer(3),
		"ratio", Must(NewReal(0.5)),
		"ok", Must(NewBoolean(true)),
		"blob", Must(NewData([]byte("Hello"))),
		"when", Must(NewDate(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))),
		"list", array(integer(1), dict("x", str("y")), array()),
		"empty", dict(),
	)
}

// noLeaks fails t if the number of live nodes at the end of the test
// differs from the number at the start.
func noLeaks(t *testing.T) {
	t.Helper()
	before := Live()
	t.Cleanup(func() {
		if d := Live() - before; d != 0 {
			t.Errorf("%d nodes leaked", d)
		}
	})
}

// failAfter makes every allocation after the first n fail until the test
// ends.
func failAfter(t *testing.T, n int) {
	t.Helper()
	count := 0
	allocHook = func(Kind) bool {
		count++
		return count <= n
	}
	t.Cleanup(func() { allocHook = nil })
}

func keyNames(d *Node) []string {
	var res []string
	for k := range d.All() {
		res = append(res, k.Name())
	}
	return res
}
