package procvar

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cibseven/procvar/codec"
)

// Type is the wire type of a process variable. The set is closed.
type Type int

const (
	TypeString Type = iota
	TypeBoolean
	TypeShort
	TypeInteger
	TypeLong
	TypeDouble
	TypeDate
	TypeJSON
	TypeXML
	TypeObject
	TypeNull
	TypeFile
)

var typeNames = [...]string{
	TypeString:  "String",
	TypeBoolean: "Boolean",
	TypeShort:   "Short",
	TypeInteger: "Integer",
	TypeLong:    "Long",
	TypeDouble:  "Double",
	TypeDate:    "Date",
	TypeJSON:    "Json",
	TypeXML:     "Xml",
	TypeObject:  "Object",
	TypeNull:    "Null",
	TypeFile:    "File",
}

// Types returns every Type in declaration order.
func Types() []Type {
	out := make([]Type, len(typeNames))
	for i := range typeNames {
		out[i] = Type(i)
	}
	return out
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool { return t >= 0 && int(t) < len(typeNames) }

// String returns the wire name, e.g. "Integer" or "Json".
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Numeric reports whether values of t are held as native numbers.
func (t Type) Numeric() bool {
	switch t {
	case TypeShort, TypeInteger, TypeLong, TypeDouble:
		return true
	}
	return false
}

// ParseType resolves a wire name. Exact names win; a case-insensitive match
// ("json", "XML") is accepted as a fallback.
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	for i, n := range typeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("procvar: unknown type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("procvar: invalid type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ValueInfo is the metadata carried by Object variables.
type ValueInfo struct {
	ObjectTypeName          string `json:"objectTypeName,omitempty" yaml:"objectTypeName,omitempty"`
	SerializationDataFormat string `json:"serializationDataFormat,omitempty" yaml:"serializationDataFormat,omitempty"`
}

const (
	// GenericMapTypeName is the object type inferred for JSON objects turned into Object values.
	GenericMapTypeName = "java.util.HashMap"
	// JSONDataFormat is the serialization format inferred alongside GenericMapTypeName.
	JSONDataFormat = "application/json"
)

// LongRange selects the bounds used to validate Long values.
type LongRange int

const (
	// LongSafe bounds Long by ±(2^53-1), the integers a script host represents exactly.
	LongSafe LongRange = iota
	// Long64 bounds Long by the full signed 64-bit range.
	Long64
)

// MaxSafeInteger is 2^53-1.
const MaxSafeInteger = 1<<53 - 1

// Integer bounds per type.
var (
	ShortRange    = codec.IntRange{Min: math.MinInt16, Max: math.MaxInt16}
	IntegerRange  = codec.IntRange{Min: math.MinInt32, Max: math.MaxInt32}
	LongSafeRange = codec.IntRange{Min: -MaxSafeInteger, Max: MaxSafeInteger}
	Long64Range   = codec.IntRange{Min: math.MinInt64, Max: math.MaxInt64}
)

// ParseLongRange maps "safe" and "int64" to a LongRange. Empty means LongSafe.
func ParseLongRange(s string) (LongRange, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "safe":
		return LongSafe, nil
	case "int64", "64":
		return Long64, nil
	}
	return LongSafe, fmt.Errorf("procvar: unknown long range %q (want safe or int64)", s)
}

func (r LongRange) String() string {
	if r == Long64 {
		return "int64"
	}
	return "safe"
}

// Options tunes validation and coercion. When several are passed to a
// variadic call, the last one wins.
type Options struct {
	// LongRange bounds Long values; LongSafe by default.
	LongRange LongRange
	// Now supplies the current time for Date coercion; time.Now when nil.
	Now func() time.Time
}

func pickOptions(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[len(opts)-1]
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// intRange returns the bounds for an integer type.
func (o Options) intRange(t Type) codec.IntRange {
	switch t {
	case TypeShort:
		return ShortRange
	case TypeInteger:
		return IntegerRange
	}
	if o.LongRange == Long64 {
		return Long64Range
	}
	return LongSafeRange
}
