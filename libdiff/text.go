package libdiff

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/plist-format/go-plist/encode"
	"github.com/signadot/plist-format/go-plist/ir"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText returns a line diff of the pretty text encodings of from and
// to.  Each line is prefixed by "  ", "- " or "+ ".  The result is empty
// when the encodings are equal.
func DiffText(from, to *ir.Node, opts ...encode.EncodeOption) (string, error) {
	a, err := encodeString(from, opts)
	if err != nil {
		return "", err
	}
	b, err := encodeString(to, opts)
	if err != nil {
		return "", err
	}
	if a == b {
		return "", nil
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String(), nil
}

func encodeString(n *ir.Node, opts []encode.EncodeOption) (string, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(n, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteChanges writes one line per change to w.  An insertion is written
// as "+ path = value", a deletion as "- path = value" and a replacement as
// "~ path = from -> to", with values in the wire text form.  Lines are
// colored when colors is set.
func WriteChanges(w io.Writer, cs []Change, colors bool) error {
	paint := map[ChangeOp]func(string, ...any) string{
		Insert:  color.GreenString,
		Delete:  color.RedString,
		Replace: color.YellowString,
	}
	for _, c := range cs {
		var line string
		switch c.Op {
		case Insert:
			v, err := wireString(c.To)
			if err != nil {
				return err
			}
			line = "+ " + c.Path + " = " + v
		case Delete:
			v, err := wireString(c.From)
			if err != nil {
				return err
			}
			line = "- " + c.Path + " = " + v
		case Replace:
			f, err := wireString(c.From)
			if err != nil {
				return err
			}
			t, err := wireString(c.To)
			if err != nil {
				return err
			}
			line = "~ " + c.Path + " = " + f + " -> " + t
		}
		if colors {
			line = paint[c.Op]("%s", line)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func wireString(n *ir.Node) (string, error) {
	return encodeString(n, []encode.EncodeOption{encode.EncodeWire(true)})
}
