package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/plist-format/go-plist/token"
)

var (
	ErrMaxDepth     = errors.New("maximum depth exceeded")
	ErrTrailingData = errors.New("data after document")
)

// DecodeErr is a decoding failure at a position in the input.  The wrapped
// error matches ir.ErrDecode for malformed input, or ir.ErrOutOfMemory when
// a resource limit was hit.
type DecodeErr struct {
	Err error
	Pos token.Pos
}

func (e *DecodeErr) Unwrap() error {
	return e.Err
}

func (e *DecodeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
