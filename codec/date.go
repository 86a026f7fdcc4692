package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the layout produced by FormatDate.
const DateLayout = "2006-01-02T15:04:05"

// YYYY-MM-DD, optionally followed by THH:mm:ss[.fraction].
var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:T(\d{2}):(\d{2}):(\d{2})(?:\.(\d{1,9}))?)?$`)

// ParseDate parses an ISO-8601 style date-time. After parsing, the calendar
// fields are rebuilt with time.Date and compared with the input; a value that
// would silently roll over (hour 60, month 13, February 30) fails with
// ErrRollover. Zones are not part of the grammar; values are UTC.
func ParseDate(s string) (time.Time, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DDTHH:mm:ss", ErrSyntax, s)
	}
	year, month, day := atoi(m[1]), atoi(m[2]), atoi(m[3])
	hour, minute, sec := atoi(m[4]), atoi(m[5]), atoi(m[6])
	nsec := 0
	if frac := m[7]; frac != "" {
		nsec = atoi(frac + strings.Repeat("0", 9-len(frac)))
	}
	t := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != sec {
		return time.Time{}, fmt.Errorf("%w: %q", ErrRollover, s)
	}
	return t, nil
}

// FormatDate renders t with DateLayout in t's own location.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// atoi converts a digit run already validated by datePattern.
func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
