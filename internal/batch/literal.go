package batch

import (
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	j "github.com/goccy/go-json"
)

// ErrNotScalar is returned when a literal is an object or an array.
var ErrNotScalar = errors.New("value must be a string, number, boolean or null")

// ParseLiteral decodes a JSON scalar as typed on a command line: 12, 2.5,
// true, null or "text". Integral numbers become int64; other numbers keep
// their exact text as a json.Number.
func ParseLiteral(s string) (any, error) {
	dec := j.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("literal %q: %w", s, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("literal %q: unexpected data after value", s)
	}
	v = normalize(v)
	if !isScalar(v) {
		return nil, fmt.Errorf("literal %q: %w", s, ErrNotScalar)
	}
	return v, nil
}

// normalize converts decoder numbers to int64 when exact and json.Number
// otherwise; nested values are converted recursively.
func normalize(v any) any {
	switch x := v.(type) {
	case j.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		return stdjson.Number(x.String())
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
	}
	return v
}

func isScalar(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return false
	}
	return true
}
