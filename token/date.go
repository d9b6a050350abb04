package token

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02 15:04:05"

	// DateLayout is the layout dates are written in.
	DateLayout = dateLayout + " -0700"
)

// zoneAbbrevs holds the offsets, in hours, of the zone abbreviations a
// date may name.  Other abbreviations are rejected.
var zoneAbbrevs = map[string]int{
	"UTC": 0, "UT": 0, "GMT": 0,
	"EST": -5, "EDT": -4,
	"CST": -6, "CDT": -5,
	"MST": -7, "MDT": -6,
	"PST": -8, "PDT": -7,
	"AKST": -9, "AKDT": -8,
	"HST": -10,
	"WET": 0, "WEST": 1,
	"BST": 1,
	"CET": 1, "CEST": 2,
	"EET": 2, "EEST": 3,
	"JST": 9,
}

// ParseDate parses the body of a date token, the part between "<*D" and
// ">".  The time zone after the clock time may be ±HHMM, ±HH:MM, Z or one
// of a fixed set of abbreviations such as UTC or PST.  Without a zone the
// time is UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(dateLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDate, s)
	}
	base, tz := s[:len(dateLayout)], strings.TrimSpace(s[len(dateLayout):])
	var (
		t   time.Time
		err error
	)
	switch {
	case tz == "" || tz == "Z":
		t, err = time.ParseInLocation(dateLayout, base, time.UTC)
	case tz[0] == '+' || tz[0] == '-':
		layout := dateLayout + " -0700"
		if strings.IndexByte(tz, ':') != -1 {
			layout = dateLayout + " -07:00"
		}
		t, err = time.Parse(layout, base+" "+tz)
	default:
		off, ok := zoneAbbrevs[strings.ToUpper(tz)]
		if !ok {
			return time.Time{}, fmt.Errorf("%w: %q: unknown time zone %q", ErrDate, s, tz)
		}
		t, err = time.ParseInLocation(dateLayout, base, time.FixedZone(strings.ToUpper(tz), off*3600))
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrDate, s, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
