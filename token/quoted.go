package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Unescape maps the byte following a backslash in a quoted string to the
// byte it stands for.
func Unescape(c byte) (byte, bool) {
	switch c {
	case '\\', '/', '"':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	default:
		return 0, false
	}
}

// AppendQuote appends v to d as a double quoted string which Unquote and
// the decoder accept.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"', '\\':
			d = append(d, '\\', c)
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, c)
		}
	}
	return append(d, '"')
}

func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// Unquote reverses Quote.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != '"' {
		return "", fmt.Errorf("%w: %q is not quoted", ErrUnterminated, v)
	}
	b := &strings.Builder{}
	esc := false
	for i := 1; i < len(v); i++ {
		c := v[i]
		switch {
		case esc:
			u, ok := Unescape(c)
			if !ok {
				return "", fmt.Errorf("%w: \\%c", ErrBadEscape, c)
			}
			b.WriteByte(u)
			esc = false
		case c == '\\':
			esc = true
		case c == '"':
			if i != len(v)-1 {
				return "", fmt.Errorf("%w after closing quote", ErrUnexpected)
			}
			if !utf8.ValidString(b.String()) {
				return "", ErrBadUTF8
			}
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
	return "", ErrUnterminated
}
