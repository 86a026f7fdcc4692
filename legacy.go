package procvar

import "strings"

// ConvertToType turns raw form input into the typed value sent for t, or
// fails with a *TypeError reading "Value '<v>' is not of type <T>".
//
// It predates Validate and is kept for callers that expect a conversion that
// either succeeds or errors. Unlike Validate, Boolean accepts the text "true"
// and "false".
func ConvertToType(v any, t Type, opts ...Options) (any, error) {
	o := pickOptions(opts)
	fail := func(iss *Issue) (any, error) {
		return nil, &TypeError{Value: v, Type: t, Issue: iss}
	}

	switch t {
	case TypeBoolean:
		switch x := v.(type) {
		case nil, bool:
			return x, nil
		case string:
			switch strings.ToLower(strings.TrimSpace(x)) {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
		return fail(newIssue(t, v, CodeInvalidType, nil, nil))
	case TypeString:
		if v == nil {
			return nil, nil
		}
		return Text(v), nil
	case TypeShort, TypeInteger, TypeLong:
		r := o.intRange(t)
		i, err := integerValue(v, r)
		if err != nil {
			return fail(integerIssue(t, v, err, r))
		}
		if isBlank(v) || isWhitespace(v) {
			return nil, nil
		}
		return i, nil
	case TypeDouble:
		if iss := Validate(t, v, nil, o); iss != nil {
			return fail(iss)
		}
		if isBlank(v) || isWhitespace(v) {
			return nil, nil
		}
		f, _ := doubleValue(v)
		return f, nil
	case TypeObject:
		return v, nil
	}

	if iss := Validate(t, v, nil, o); iss != nil {
		return fail(iss)
	}
	if isBlank(v) {
		return nil, nil
	}
	return v, nil
}

// MustConvertToType is like ConvertToType but panics on failure.
func MustConvertToType(v any, t Type, opts ...Options) any {
	out, err := ConvertToType(v, t, opts...)
	if err != nil {
		panic(err)
	}
	return out
}

func isWhitespace(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
