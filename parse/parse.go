package parse

import (
	"errors"
	"io"

	"github.com/signadot/plist-format/go-plist/ir"
)

// Parse decodes a complete document held in d.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	dec := NewDecoder(opts...)
	if _, err := dec.Parse(d); err != nil {
		dec.Reset()
		return nil, err
	}
	return finish(dec)
}

// ParseReader decodes a complete document read from r, feeding the
// decoder one read of at most ChunkSize bytes at a time.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	dec := NewDecoder(opts...)
	buf := make([]byte, dec.opts.chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, perr := dec.Parse(buf[:n]); perr != nil {
				dec.Reset()
				return nil, perr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			dec.Reset()
			return nil, err
		}
	}
	return finish(dec)
}

func finish(dec *Decoder) (*ir.Node, error) {
	if err := dec.Close(); err != nil {
		dec.Reset()
		return nil, err
	}
	return dec.Result()
}
