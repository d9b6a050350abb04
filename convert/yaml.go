package convert

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/plist-format/go-plist/ir"
)

// EncodeYAML writes the tree rooted at n to w as a YAML document, keeping
// dictionary order.
func EncodeYAML(n *ir.Node, w io.Writer, opts ...Option) error {
	o := newOpts(opts)
	v, err := toAny(n, true)
	if err != nil {
		return err
	}
	yopts := []yaml.EncodeOption{yaml.Indent(len(o.indent))}
	if !o.pretty {
		yopts = append(yopts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(v, yopts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	_, err = w.Write(d)
	return err
}

// DecodeYAML reads one YAML document from r.  Mapping order is kept and
// non-string mapping keys are formatted as strings.
//
// The caller owns the result.
func DecodeYAML(r io.Reader) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrDecode, err)
	}
	n, err := FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrDecode, err)
	}
	return n, nil
}
