package procvar

import (
	"math"

	"github.com/cibseven/procvar/codec"
)

// Coerced is the outcome of a type switch: the value to display under the new
// type and, for Object targets, inferred metadata.
type Coerced struct {
	Value     any
	ValueInfo *ValueInfo
}

// Coerce carries v, entered under type from, over to type to. It is meant to
// run once per type-selector change, never on plain value edits.
//
// When from equals to the value is returned untouched. A value that carries
// no information for its source type (see IsSourceDefault) becomes the
// target's DefaultValue. Anything else goes through the target type's
// conversion rule; see the to* functions below.
func Coerce(v any, from, to Type, opts ...Options) Coerced {
	if from == to {
		return Coerced{Value: v}
	}
	if IsSourceDefault(v, from) {
		return Coerced{Value: DefaultValue(to)}
	}
	return to.rules().coerce(v, from, pickOptions(opts))
}

// Json sources are shown pretty-printed; everything else as its textual form.
func toString(v any, from Type, _ Options) Coerced {
	if from == TypeJSON {
		if s, err := codec.PrettyJSON(Text(v)); err == nil {
			return Coerced{Value: s}
		}
	}
	return Coerced{Value: Text(v)}
}

// Something was entered, so the switch never lands on false.
func toBoolean(any, Type, Options) Coerced { return Coerced{Value: true} }

func toInteger(v any, _ Type, _ Options) Coerced { return Coerced{Value: leadingInteger(v)} }

// leadingInteger parses the integer prefix of text and truncates numbers
// toward zero; it yields 0 for anything else.
func leadingInteger(v any) int64 {
	switch x := v.(type) {
	case string:
		i, _ := codec.LeadingInt(x)
		return i
	case bool:
		return 0
	}
	if i, ok := asInt64(v); ok {
		return i
	}
	f, ok := asFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}

func toDouble(v any, _ Type, _ Options) Coerced {
	var f float64
	switch x := v.(type) {
	case string:
		f, _ = codec.LeadingFloat(x)
	case bool:
	default:
		if n, ok := asFloat(x); ok && !math.IsNaN(n) && !math.IsInf(n, 0) {
			f = n
		}
	}
	return Coerced{Value: f}
}

// A non-date entry switched to Date starts at the current time.
func toDate(v any, from Type, o Options) Coerced {
	if from == TypeDate {
		return Coerced{Value: v}
	}
	return Coerced{Value: codec.FormatDate(o.now())}
}

// Textual sources are reparsed and pretty-printed; numeric sources never are.
func toJSON(v any, from Type, _ Options) Coerced {
	if from.Numeric() {
		return Coerced{Value: "{}"}
	}
	if s, err := codec.PrettyJSON(Text(v)); err == nil {
		return Coerced{Value: s}
	}
	return Coerced{Value: "{}"}
}

func toXML(any, Type, Options) Coerced { return Coerced{Value: ""} }

// The payload is the textual form, pretty-printed when it is JSON text. A
// JSON object coming from a Json source also gets generic-map metadata.
func toObject(v any, from Type, _ Options) Coerced {
	s := Text(v)
	n, err := codec.ParseJSON(s)
	if err != nil {
		return Coerced{Value: s}
	}
	out := Coerced{Value: codec.RenderJSON(n)}
	if from == TypeJSON && n.IsObject() {
		out.ValueInfo = &ValueInfo{ObjectTypeName: GenericMapTypeName, SerializationDataFormat: JSONDataFormat}
	}
	return out
}

func toNothing(any, Type, Options) Coerced { return Coerced{} }
