package mergeop

import (
	"bytes"

	"github.com/signadot/plist-format/go-plist/convert"
	"github.com/signadot/plist-format/go-plist/ir"
)

func toJSON(n *ir.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := convert.EncodeJSON(n, buf, convert.Compact()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fromJSON(d []byte) (*ir.Node, error) {
	return convert.DecodeJSON(bytes.NewReader(d))
}
