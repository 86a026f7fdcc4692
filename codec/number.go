package codec

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	eng "github.com/cibseven/procvar/internal/engine"
)

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min int64
	Max int64
}

// Contains reports whether i lies within r.
func (r IntRange) Contains(i int64) bool { return i >= r.Min && i <= r.Max }

var (
	decimalPattern      = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)
	leadingFloatPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	leadingIntPattern   = regexp.MustCompile(`^[+-]?\d+`)
)

// two63 is 2^63 as a float64; every integral float below it in magnitude fits int64.
const two63 = float64(1 << 63)

// ParseFloat parses decimal number text (surrounding whitespace allowed) and
// rejects results that are not finite.
func ParseFloat(s string) (float64, error) {
	t := strings.TrimSpace(s)
	if !decimalPattern.MatchString(t) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrSyntax, s)
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q", ErrNotFinite, s)
	}
	return f, nil
}

// ParseInt parses decimal number text into an exact integer within r. Text
// with a fraction or exponent is accepted when its value is integral, so
// "1.0" and "1e3" parse while "100.10" fails with ErrNotInteger.
func ParseInt(s string, r IntRange) (int64, error) {
	t := strings.TrimSpace(s)
	if !decimalPattern.MatchString(t) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrSyntax, s)
	}
	i, err := strconv.ParseInt(t, 10, 64)
	if err == nil {
		return checkRange(s, i, r)
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, &RangeError{Input: s, Range: r, Below: strings.HasPrefix(t, "-")}
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return IntFromFloat(s, f, r)
}

// IntFromFloat converts an integral float to int64 within r.
func IntFromFloat(input string, f float64, r IntRange) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, input)
	}
	if f >= two63 || f < -two63 {
		return 0, &RangeError{Input: input, Range: r, Below: f < 0}
	}
	return checkRange(input, int64(f), r)
}

func checkRange(input string, i int64, r IntRange) (int64, error) {
	if i < r.Min {
		return 0, &RangeError{Input: input, Range: r, Below: true}
	}
	if i > r.Max {
		return 0, &RangeError{Input: input, Range: r}
	}
	return i, nil
}

// LeadingInt parses the integer prefix of s after leading whitespace, so
// "12abc" yields 12 and "3.9" yields 3. It reports false when s has no integer
// prefix or the prefix does not fit in int64.
func LeadingInt(s string) (int64, bool) {
	m := leadingIntPattern.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if m == "" {
		return 0, false
	}
	i, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// LeadingFloat parses the decimal prefix of s after leading whitespace, so
// "3.5kg" yields 3.5. It reports false when there is no prefix or the value is
// not finite.
func LeadingFloat(s string) (float64, bool) {
	m := leadingFloatPattern.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FormatNumber renders f in script-host notation, e.g. 10.5, 1e+21, 1e-7.
func FormatNumber(f float64) string { return eng.FormatFloat(f) }
