package convert

import "errors"

var ErrUnsupported = errors.New("unsupported value")
