// Package gomap maps property lists to and from Go values.
//
// Values travel through JSON, so the usual encoding/json struct tags
// apply.  Data nodes arrive as base64 strings, which decode into []byte
// fields, and dates arrive as RFC3339 strings, which decode into
// time.Time fields.  In the other direction those types become strings.
package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/plist-format/go-plist/convert"
	"github.com/signadot/plist-format/go-plist/format"
	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/parse"
)

type fromOpts struct {
	format format.Format
	popts  []parse.ParseOption
}

type FromOption func(*fromOpts)

func LoadFormat(f format.Format) FromOption { return func(o *fromOpts) { o.format = f } }
func LoadParseOptions(opts ...parse.ParseOption) FromOption {
	return func(o *fromOpts) { o.popts = append(o.popts, opts...) }
}

// IRFromer is implemented by values which decode themselves from a node.
type IRFromer interface {
	FromIR(*ir.Node) error
}

// IRToer is implemented by values which encode themselves as a node.
type IRToer interface {
	ToIR() (*ir.Node, error)
}

// Load decodes d, in the text format unless LoadFormat says otherwise,
// and stores the result in p.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	node, err := convert.Decode(bytes.NewReader(d), do.format, do.popts...)
	if err != nil {
		return err
	}
	defer node.Free()
	return FromIR(node, p)
}

// FromIR stores node in p.
func FromIR(node *ir.Node, p any) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	b := &bytes.Buffer{}
	if err := convert.EncodeJSON(node, b, convert.Compact()); err != nil {
		return err
	}
	if err := json.Unmarshal(b.Bytes(), p); err != nil {
		return fmt.Errorf("error mapping %s: %w", node.Path(), err)
	}
	return nil
}

// ToIR returns a new tree holding v.  The caller owns the result.
func ToIR(v any) (*ir.Node, error) {
	if x, ok := v.(IRToer); ok {
		return x.ToIR()
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return convert.DecodeJSON(bytes.NewReader(d))
}
