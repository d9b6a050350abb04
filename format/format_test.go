package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{TextFormat, JSONFormat, YAMLFormat, MsgpackFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("%s came back as %s", f, back)
		}
		if g, ok := FromPath("doc" + f.Suffix()); !ok || g != f {
			t.Errorf("FromPath(%s) = %s, %v", f.Suffix(), g, ok)
		}
	}
	if f, err := ParseFormat("YAML"); err != nil || f != YAMLFormat {
		t.Errorf("got %s %v", f, err)
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if _, ok := FromPath("x.conf"); ok {
		t.Error("unknown suffix")
	}
}
