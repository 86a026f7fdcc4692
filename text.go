package procvar

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cibseven/procvar/codec"
)

// Text returns the textual form of a value as a form would display it:
// nil is empty, booleans are true/false, and numbers use script-host
// notation (10.5, 1e+21).
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		if f, err := codec.ParseFloat(string(x)); err == nil {
			return codec.FormatNumber(f)
		}
		return string(x)
	case float64:
		return codec.FormatNumber(x)
	case float32:
		return codec.FormatNumber(float64(x))
	}
	if i, ok := asInt64(v); ok {
		return strconv.FormatInt(i, 10)
	}
	if u, ok := v.(uint64); ok {
		return strconv.FormatUint(u, 10)
	}
	if u, ok := v.(uint); ok {
		return strconv.FormatUint(uint64(u), 10)
	}
	return fmt.Sprint(v)
}

// asInt64 converts Go integer kinds that always fit into int64.
func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	}
	return 0, false
}

// isNumber reports whether v is a Go number or a json.Number.
func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return true
	}
	return false
}

// asFloat returns the numeric value of a Go number, json.Number, or numeric text.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uint:
		return float64(x), true
	case json.Number:
		f, err := codec.ParseFloat(string(x))
		return f, err == nil
	case string:
		f, err := codec.ParseFloat(x)
		return f, err == nil
	}
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// isBlank reports whether v is nil or the empty string.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
