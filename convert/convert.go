package convert

import (
	"fmt"
	"io"

	"github.com/signadot/plist-format/go-plist/debug"
	"github.com/signadot/plist-format/go-plist/encode"
	"github.com/signadot/plist-format/go-plist/format"
	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/parse"
)

// Encode writes the tree rooted at n to w in format f.
func Encode(n *ir.Node, w io.Writer, f format.Format, opts ...Option) error {
	if debug.Convert() {
		debug.Logf("convert: encode %s %s\n", f, n.Kind())
	}
	switch f {
	case format.TextFormat:
		o := newOpts(opts)
		return encode.Encode(n, w, encode.EncodeWire(!o.pretty), encode.Indent(len(o.indent)))
	case format.JSONFormat:
		return EncodeJSON(n, w, opts...)
	case format.YAMLFormat:
		return EncodeYAML(n, w, opts...)
	case format.MsgpackFormat:
		return EncodeMsgpack(n, w)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}

// Decode reads one document in format f from r.  The parse options apply
// to the text format only.
//
// The caller owns the result.
func Decode(r io.Reader, f format.Format, popts ...parse.ParseOption) (*ir.Node, error) {
	if debug.Convert() {
		debug.Logf("convert: decode %s\n", f)
	}
	switch f {
	case format.TextFormat:
		return parse.ParseReader(r, popts...)
	case format.JSONFormat:
		return DecodeJSON(r)
	case format.YAMLFormat:
		return DecodeYAML(r)
	case format.MsgpackFormat:
		return DecodeMsgpack(r)
	}
	return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}
