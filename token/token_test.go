package token

import (
	"errors"
	"testing"
	"time"
)

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		`"`,
		`\`,
		"\t\n\r\b\f",
		"∞∞",
		`a/b`,
		"\x01raw",
	} {
		q := Quote(s)
		uq, err := Unquote(q)
		if err != nil {
			t.Errorf("error unquoting %q (from %q): %v", q, s, err)
			continue
		}
		if uq != s {
			t.Errorf("unquote(quote(%q)) = %q", s, uq)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{`"a\/b"`, "a/b", nil},
		{`"\q"`, "", ErrBadEscape},
		{`"abc`, "", ErrUnterminated},
		{`abc"`, "", ErrUnterminated},
		{`"a"b"`, "", ErrUnexpected},
		{"\"\xff\"", "", ErrBadUTF8},
	}
	for _, tt := range tests {
		got, err := Unquote(tt.in)
		if !errors.Is(err, tt.err) || (tt.err == nil && err != nil) {
			t.Errorf("Unquote(%s): got error %v, want %v", tt.in, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("Unquote(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in     string
		isReal bool
		err    error
	}{
		{"0", false, nil},
		{"-12", false, nil},
		{"1.5", true, nil},
		{"1e9", true, nil},
		{"-1.25E-3", true, nil},
		{"0.5", true, nil},
		{"", false, ErrNumber},
		{"-", false, ErrNumber},
		{"01", false, ErrNumberLeadingZero},
		{"1.", false, ErrNumber},
		{"1e", false, ErrNumber},
		{"1.2.3", false, ErrNumber},
		{"1-", false, ErrNumber},
		{"+1", false, ErrNumber},
	}
	for _, tt := range tests {
		isReal, err := Number([]byte(tt.in))
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("Number(%q): got %v, want %v", tt.in, err, tt.err)
			}
			continue
		}
		if err != nil || isReal != tt.isReal {
			t.Errorf("Number(%q) = %v, %v", tt.in, isReal, err)
		}
	}
}

func TestParseInt(t *testing.T) {
	v, err := ParseInt([]byte("-9223372036854775808"))
	if err != nil || v != -9223372036854775808 {
		t.Errorf("min int64: %d %v", v, err)
	}
	if _, err := ParseInt([]byte("9223372036854775808")); !errors.Is(err, ErrNumberRange) {
		t.Errorf("overflow: got %v", err)
	}
	if _, err := ParseInt([]byte("1.0")); !errors.Is(err, ErrNumber) {
		t.Errorf("real: got %v", err)
	}
}

func TestFormatReal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{-2.5, "-2.5"},
		{1e21, "1e+21"},
		{0, "0.0"},
	}
	for _, tt := range tests {
		got, err := FormatReal(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("FormatReal(%v) = %q, %v", tt.in, got, err)
			continue
		}
		back, err := ParseReal([]byte(got))
		if err != nil || back != tt.in {
			t.Errorf("ParseReal(%q) = %v, %v", got, back, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	for _, s := range []string{
		"2024-03-01 12:30:45",
		"2024-03-01 12:30:45 Z",
		"2024-03-01 12:30:45 +0000",
		"2024-03-01 14:30:45 +0200",
		"2024-03-01 14:30:45 +02:00",
		"2024-03-01 07:30:45 -0500",
		"2024-03-01 12:30:45 UTC",
		"2024-03-01 12:30:45 gmt",
		"2024-03-01 04:30:45 PST",
		"2024-03-01 07:30:45 EST",
		"2024-03-01 13:30:45 CET",
		" 2024-03-01 12:30:45 ",
	} {
		got, err := ParseDate(s)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v", s, got)
		}
	}
	for _, s := range []string{"", "2024-03-01", "2024-13-01 00:00:00", "2024-03-01 12:30:45 +2",
		"2024-03-01 12:30:45 XYZ",
		"2024-03-01 12:30:45 Europe/Paris",
	} {
		if _, err := ParseDate(s); !errors.Is(err, ErrDate) {
			t.Errorf("ParseDate(%q): got %v", s, err)
		}
	}
	pst, err := ParseDate("2024-03-01 04:30:45 PST")
	if err != nil {
		t.Fatal(err)
	}
	if _, off := pst.Zone(); off != -8*3600 {
		t.Errorf("PST offset %d", off)
	}
	got := FormatDate(time.Date(2024, 3, 1, 14, 30, 45, 0, time.FixedZone("", 2*3600)))
	if got != "2024-03-01 14:30:45 +0200" {
		t.Errorf("FormatDate: %s", got)
	}
}

func TestPosAdvance(t *testing.T) {
	p := StartPos()
	for _, c := range []byte("ab\ncd") {
		p.Advance(c)
	}
	if p.Offset != 5 || p.Line != 2 || p.Col != 3 {
		t.Errorf("got %s", p)
	}
}
