package procvar

// DefaultValue returns the "nothing entered yet" value of t. Boolean starts
// as true: the default marks a freshly initialized field, not a falsy one.
func DefaultValue(t Type) any { return t.rules().zero() }

// IsSourceDefault reports whether v carries no information for type t: it is
// nil, the empty string, or equal to DefaultValue(t). Numbers compare by
// value (numeric text included), booleans only with booleans, strings exactly.
func IsSourceDefault(v any, t Type) bool {
	if isBlank(v) {
		return true
	}
	switch d := DefaultValue(t).(type) {
	case string:
		s, ok := v.(string)
		return ok && s == d
	case bool:
		b, ok := v.(bool)
		return ok && b == d
	case int64, float64:
		want, _ := asFloat(d)
		got, ok := asFloat(v)
		return ok && got == want
	}
	return false
}
