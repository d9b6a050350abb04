package token

import "errors"

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrBadEscape         = errors.New("bad escape")
	ErrUnterminated      = errors.New("unterminated")
	ErrNumber            = errors.New("number")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrNumberRange       = errors.New("number out of range")
	ErrLiteral           = errors.New("bad literal")
	ErrHex               = errors.New("bad hex digit")
	ErrOddHex            = errors.New("odd number of hex digits")
	ErrDate              = errors.New("bad date")
	ErrUnexpected        = errors.New("unexpected")
)
