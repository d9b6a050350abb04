package token

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IsNumberByte reports whether c may appear in a numeric literal.
func IsNumberByte(c byte) bool {
	switch c {
	case '-', '+', '.', 'e', 'E':
		return true
	}
	return asciiDigit(c)
}

// Number checks that d is exactly one numeric literal: an optional '-',
// digits without a leading zero, and for reals a fraction and/or exponent.
func Number(d []byte) (isReal bool, err error) {
	s := d
	if len(s) != 0 && s[0] == '-' {
		s = s[1:]
	}
	n, isReal, err := number(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q", err, d)
	}
	if n != len(s) {
		return false, fmt.Errorf("%w: trailing %q in %q", ErrNumber, s[n:], d)
	}
	return isReal, nil
}

// ParseInt parses an integer literal into 64 bits.  Values which do not fit
// fail with ErrNumberRange rather than being truncated.
func ParseInt(d []byte) (int64, error) {
	isReal, err := Number(d)
	if err != nil {
		return 0, err
	}
	if isReal {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrNumber, d)
	}
	v, err := strconv.ParseInt(string(d), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", ErrNumberRange, d)
	}
	return v, err
}

func ParseReal(d []byte) (float64, error) {
	if _, err := Number(d); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(string(d), 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", ErrNumberRange, d)
	}
	return v, err
}

// FormatReal formats f so that it reads back as a real, never as an
// integer.  NaN and infinities have no literal form.
func FormatReal(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v has no literal", ErrNumber, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}

func number(d []byte) (int, bool, error) {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0, false, ErrNumber
	}
	if digits > 1 && d[0] == '0' {
		return digits, false, ErrNumberLeadingZero
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	return f + e + digits, f+e != 0, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	// '.' must be followed by one or more digits
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}
