package encode_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

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

func sample(t *testing.T) *ir.Node {
	t.Helper()
	d := mustParse(t, `{"a":1;"b":(1,"x");"c":{};"d":<0102>;"f":1.5;"g":true;}`)
	if err := d.Set("e", ir.Must(ir.NewDate(time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)))); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestEncodePretty(t *testing.T) {
	d := sample(t)
	defer d.Free()
	want := `{
  "a" = 1;
  "b" = (
    1,
    "x"
  );
  "c" = {};
  "d" = <0102>;
  "f" = 1.5;
  "g" = true;
  "e" = <*D2024-03-01 12:30:45 +0000>;
}
`
	buf := &bytes.Buffer{}
	if err := encode.Encode(d, buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("pretty output (-want +got):\n%s", diff)
	}
}

func TestEncodeWire(t *testing.T) {
	for _, doc := range []string{
		`{"a":1;"b":(1,2,3);}`,
		`()`,
		`{}`,
		`true`,
		`"q\"uote\\"`,
		`(<>,<00ff>,-1.25e-07,{"k":(());})`,
	} {
		n := mustParse(t, doc)
		got := encode.MustString(n, encode.EncodeWire(true))
		if got != doc {
			t.Errorf("wire encoding of %s: got %s", doc, got)
		}
		n.Free()
	}
}

func TestRoundTrip(t *testing.T) {
	d := sample(t)
	defer d.Free()
	if err := d.Set("s", ir.Must(ir.NewString("tab\there \"q\" ∞ \\ /"))); err != nil {
		t.Fatal(err)
	}
	if err := d.Set("big", ir.Must(ir.NewReal(1e300))); err != nil {
		t.Fatal(err)
	}
	if err := d.Set("whole", ir.Must(ir.NewReal(3))); err != nil {
		t.Fatal(err)
	}
	for _, opts := range [][]encode.EncodeOption{
		nil,
		{encode.EncodeWire(true)},
		{encode.Indent(4)},
	} {
		buf := &bytes.Buffer{}
		if err := encode.Encode(d, buf, opts...); err != nil {
			t.Fatal(err)
		}
		back, err := parse.Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("reparse %q: %v", buf, err)
		}
		if !ir.Equal(d, back) {
			t.Errorf("round trip changed tree:\n%s", buf)
		}
		back.Free()
	}
}

func TestEncodeErrors(t *testing.T) {
	k := ir.Must(ir.NewKey("a", ir.Must(ir.NewInteger(1))))
	defer k.Free()
	nan := ir.Must(ir.NewReal(math.NaN()))
	defer nan.Free()
	inf := ir.Must(ir.NewArray())
	defer inf.Free()
	if err := inf.Append(ir.Must(ir.NewReal(math.Inf(1)))); err != nil {
		t.Fatal(err)
	}
	keys := ir.Must(ir.NewArray())
	defer keys.Free()
	if err := keys.Append(ir.Must(ir.NewKey("b", ir.Must(ir.NewInteger(2))))); err != nil {
		t.Fatal(err)
	}
	for _, n := range []*ir.Node{k, keys, nan, inf, nil} {
		if err := encode.Encode(n, &bytes.Buffer{}); !errors.Is(err, encode.ErrEncoding) {
			t.Errorf("encode %s: got %v", n, err)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	d := mustParse(t, `{"a":(1,"x",true);}`)
	defer d.Free()

	color.NoColor = true
	plain := encode.MustString(d, encode.EncodeColors(encode.NewColors()))
	if plain != encode.MustString(d) {
		t.Errorf("disabled colors changed output: %q", plain)
	}

	color.NoColor = false
	colored := encode.MustString(d, encode.EncodeColors(encode.NewColors()))
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("expected escape sequences in %q", colored)
	}
}

func TestDump(t *testing.T) {
	d := mustParse(t, `{"a":1;"b":(TRUE,<48656c6c6f>,2.5);"k":"s";"e":{};}`)
	defer d.Free()
	if err := d.Set("t", ir.Must(ir.NewDate(time.Date(2024, 3, 1, 12, 30, 45, 0, time.FixedZone("", -5*3600))))); err != nil {
		t.Fatal(err)
	}
	in := strings.Repeat(" ", 8)
	want := "dict\n" +
		in + "key=a\n" +
		in + "integer=1\n" +
		in + "key=b\n" +
		in + "array\n" +
		in + in + "boolean=true\n" +
		in + in + "data\n" +
		"0:\t48 65 6c 6c 6f " + strings.Repeat(" ", 36) + "Hello\n" +
		in + in + "real=2.500000\n" +
		in + "key=k\n" +
		in + "string=s\n" +
		in + "key=e\n" +
		in + "dict\n" +
		in + "key=t\n" +
		in + "date=2024-03-01T12:30:45-05:00\n"
	buf := &bytes.Buffer{}
	if err := encode.Dump(d, buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("dump (-want +got):\n%s", diff)
	}
}

func TestDumpLongData(t *testing.T) {
	b := make([]byte, 20)
	for i := range b {
		b[i] = byte('a' + i)
	}
	b[0] = 0
	n := ir.Must(ir.NewData(b))
	defer n.Free()
	buf := &bytes.Buffer{}
	if err := encode.Dump(n, buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %q", buf)
	}
	if !strings.HasPrefix(lines[1], "0:\t00 62 ") || !strings.HasSuffix(lines[1], ".bcdefghijklmnop") {
		t.Errorf("first row %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "16:\t71 72 73 74 ") || !strings.HasSuffix(lines[2], "qrst") {
		t.Errorf("second row %q", lines[2])
	}
}

func TestEncodeSubtree(t *testing.T) {
	a := mustParse(t, `(1,(2,3))`)
	defer a.Free()
	buf := &bytes.Buffer{}
	if err := encode.Encode(a.At(1), buf, encode.EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "(2,3)" {
		t.Errorf("got %q", got)
	}
}
