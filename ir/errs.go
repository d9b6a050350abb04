package ir

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfMemory     = errors.New("out of memory")
	ErrWrongKind       = errors.New("wrong kind")
	ErrAlreadyOwned    = errors.New("already owned")
	ErrOutOfRange      = errors.New("out of range")
	ErrNotFound        = errors.New("not found")
	ErrPermission      = errors.New("permission denied")
	ErrDecode          = errors.New("decode error")
	ErrCorrupt         = errors.New("corrupt tree")
)
