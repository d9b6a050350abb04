// Package format enumerates the document formats a property list can be
// read from and written to.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	TextFormat Format = iota
	JSONFormat
	YAMLFormat
	MsgpackFormat
)

var ErrBadFormat = errors.New("bad format")

var formatNames = map[string]Format{
	"t":       TextFormat,
	"text":    TextFormat,
	"plist":   TextFormat,
	"j":       JSONFormat,
	"json":    JSONFormat,
	"y":       YAMLFormat,
	"yaml":    YAMLFormat,
	"m":       MsgpackFormat,
	"msgpack": MsgpackFormat,
}

func ParseFormat(v string) (Format, error) {
	f, ok := formatNames[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath guesses a format from the suffix of a file name.
func FromPath(p string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".plist", ".txt":
		return TextFormat, true
	case ".json":
		return JSONFormat, true
	case ".yaml", ".yml":
		return YAMLFormat, true
	case ".msgpack", ".mp":
		return MsgpackFormat, true
	}
	return TextFormat, false
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case MsgpackFormat:
		return []byte("msgpack"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsBinary reports whether documents in format f are not text.
func (f Format) IsBinary() bool { return f == MsgpackFormat }

func (f Format) Suffix() string {
	switch f {
	case TextFormat:
		return ".plist"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case MsgpackFormat:
		return ".msgpack"
	default:
		return ""
	}
}
