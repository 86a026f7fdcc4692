package procvar

// typeRules is the handler set of one Type: its default value, its validation
// rule, and how a value held under another type is carried over to it.
type typeRules struct {
	zero     func() any
	validate func(t Type, v any, info *ValueInfo, o Options) *Issue
	coerce   func(v any, from Type, o Options) Coerced
}

func (t Type) rules() typeRules {
	switch t {
	case TypeString:
		return typeRules{zero: constant(""), validate: validateString, coerce: toString}
	case TypeBoolean:
		return typeRules{zero: constant(true), validate: validateBoolean, coerce: toBoolean}
	case TypeShort, TypeInteger, TypeLong:
		return typeRules{zero: constant(int64(0)), validate: validateInteger, coerce: toInteger}
	case TypeDouble:
		return typeRules{zero: constant(float64(0)), validate: validateDouble, coerce: toDouble}
	case TypeDate:
		return typeRules{zero: constant(nil), validate: validateDate, coerce: toDate}
	case TypeJSON:
		return typeRules{zero: constant("{}"), validate: validateJSON, coerce: toJSON}
	case TypeXML:
		return typeRules{zero: constant(""), validate: validateXML, coerce: toXML}
	case TypeObject:
		return typeRules{zero: constant(""), validate: validateObject, coerce: toObject}
	case TypeNull:
		return typeRules{zero: constant(nil), validate: validateNull, coerce: toNothing}
	case TypeFile:
		return typeRules{zero: constant(nil), validate: validateUnsupported, coerce: toNothing}
	}
	return typeRules{zero: constant(nil), validate: validateUnsupported, coerce: toNothing}
}

func constant(v any) func() any { return func() any { return v } }
