package procvar

// Draft is the variable being edited: a declared type, the raw value and,
// for Object, its metadata. Drafts are values; every method returns a new
// Draft and the engine never keeps one.
type Draft struct {
	Type      Type
	Value     any
	ValueInfo *ValueInfo
}

// NewDraft returns the draft an edit session starts with: an empty String.
func NewDraft() Draft { return Draft{Type: TypeString, Value: ""} }

// WithValue replaces the value as typed by the user. No coercion happens.
func (d Draft) WithValue(v any) Draft {
	d.Value = v
	return d
}

// WithValueInfo replaces the Object metadata.
func (d Draft) WithValueInfo(info ValueInfo) Draft {
	d.ValueInfo = &info
	return d
}

// WithType switches the declared type, carrying the value over with Coerce.
// Value and ValueInfo are replaced wholesale; switching to the current type
// returns d unchanged.
func (d Draft) WithType(t Type, opts ...Options) Draft {
	if t == d.Type {
		return d
	}
	c := Coerce(d.Value, d.Type, t, opts...)
	return Draft{Type: t, Value: c.Value, ValueInfo: c.ValueInfo}
}

// Validate runs Validate on the draft.
func (d Draft) Validate(opts ...Options) *Issue {
	return Validate(d.Type, d.Value, d.ValueInfo, opts...)
}

// CheckSubmittable runs CheckSubmittable on the draft.
func (d Draft) CheckSubmittable(opts ...Options) Issues {
	return CheckSubmittable(d.Type, d.Value, d.ValueInfo, opts...)
}

// Submittable reports whether the draft may be sent to the engine.
func (d Draft) Submittable(opts ...Options) bool {
	return len(d.CheckSubmittable(opts...)) == 0
}
