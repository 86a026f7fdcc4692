package procvar

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/cibseven/procvar/codec"
)

// Validate checks v against the rule of type t and returns nil when the value
// is acceptable. It never panics. info is consulted only for TypeObject, where
// a JSON serialization format makes the payload subject to the JSON grammar.
//
// Every rule accepts nil. Json, Xml, Object and Null also accept "", and the
// numeric types accept blank text, all meaning "nothing entered".
func Validate(t Type, v any, info *ValueInfo, opts ...Options) *Issue {
	return t.rules().validate(t, v, info, pickOptions(opts))
}

func validateString(t Type, v any, _ *ValueInfo, _ Options) *Issue {
	switch v.(type) {
	case nil, string:
		return nil
	}
	return newIssue(t, v, CodeInvalidType, nil, nil)
}

// Boolean accepts only real booleans; "true" as text is rejected.
func validateBoolean(t Type, v any, _ *ValueInfo, _ Options) *Issue {
	switch v.(type) {
	case nil, bool:
		return nil
	}
	return newIssue(t, v, CodeInvalidType, nil, nil)
}

func validateInteger(t Type, v any, _ *ValueInfo, o Options) *Issue {
	_, err := integerValue(v, o.intRange(t))
	if err == nil {
		return nil
	}
	return integerIssue(t, v, err, o.intRange(t))
}

// integerValue converts v to an exact integer within r. Blank values yield
// (0, nil) and are reported by the caller as nothing entered.
func integerValue(v any, r codec.IntRange) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return 0, nil
		}
		return codec.ParseInt(x, r)
	case json.Number:
		return codec.ParseInt(string(x), r)
	case float64:
		return codec.IntFromFloat(Text(x), x, r)
	case float32:
		return codec.IntFromFloat(Text(x), float64(x), r)
	case uint64:
		return codec.ParseInt(strconv.FormatUint(x, 10), r)
	case uint:
		return codec.ParseInt(strconv.FormatUint(uint64(x), 10), r)
	}
	if i, ok := asInt64(v); ok {
		return codec.ParseInt(strconv.FormatInt(i, 10), r)
	}
	return 0, codec.ErrSyntax
}

func integerIssue(t Type, v any, err error, r codec.IntRange) *Issue {
	var re *codec.RangeError
	switch {
	case errors.As(err, &re) && re.Below:
		return newIssue(t, v, CodeTooSmall, err, map[string]any{"min": r.Min, "max": r.Max})
	case errors.As(err, &re):
		return newIssue(t, v, CodeTooBig, err, map[string]any{"min": r.Min, "max": r.Max})
	case errors.Is(err, codec.ErrNotInteger):
		return newIssue(t, v, CodeNotInteger, err, nil)
	}
	return newIssue(t, v, CodeInvalidType, err, nil)
}

func validateDouble(t Type, v any, _ *ValueInfo, _ Options) *Issue {
	_, err := doubleValue(v)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, codec.ErrNotFinite):
		return newIssue(t, v, CodeNotFinite, err, nil)
	}
	return newIssue(t, v, CodeInvalidType, err, nil)
}

// doubleValue converts v to a finite float64. Blank values yield (0, nil).
func doubleValue(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return 0, nil
		}
		return codec.ParseFloat(x)
	case bool:
		return 0, codec.ErrSyntax
	}
	f, ok := asFloat(v)
	if !ok {
		return 0, codec.ErrSyntax
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, codec.ErrNotFinite
	}
	return f, nil
}

func validateDate(t Type, v any, _ *ValueInfo, _ Options) *Issue {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		if _, err := codec.ParseDate(x); err != nil {
			iss := newIssue(t, v, CodeInvalidFormat, err, nil)
			iss.Hint = codec.DateLayout
			return iss
		}
		return nil
	}
	return newIssue(t, v, CodeInvalidType, nil, nil)
}

func validateJSON(t Type, v any, _ *ValueInfo, _ Options) *Issue {
	return checkText(t, v, codec.ValidJSON)
}

func validateXML(t Type, v any, _ *ValueInfo, _ Options) *Issue {
	return checkText(t, v, codec.CheckXML)
}

// checkText applies a grammar check to text values; nil and "" pass.
func checkText(t Type, v any, check func(string) error) *Issue {
	if isBlank(v) {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return newIssue(t, v, CodeInvalidType, nil, nil)
	}
	if err := check(s); err != nil {
		return newIssue(t, v, CodeParseError, err, nil)
	}
	return nil
}

// Object payloads are opaque unless the declared format is JSON.
func validateObject(t Type, v any, info *ValueInfo, _ Options) *Issue {
	if isBlank(v) || info == nil || !DenotesJSON(info.SerializationDataFormat) {
		return nil
	}
	if err := codec.ValidJSON(Text(v)); err != nil {
		iss := newIssue(TypeJSON, v, CodeParseError, err, nil)
		iss.Type = t
		iss.Hint = "serializationDataFormat " + info.SerializationDataFormat
		return iss
	}
	return nil
}

func validateNull(t Type, v any, _ *ValueInfo, _ Options) *Issue {
	if isBlank(v) {
		return nil
	}
	return newIssue(t, v, CodeInvalidType, nil, nil)
}

// File payloads travel through a separate upload and are never valid here.
func validateUnsupported(t Type, v any, _ *ValueInfo, _ Options) *Issue {
	return newIssue(t, v, CodeUnsupported, nil, nil)
}
