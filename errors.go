package procvar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cibseven/procvar/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeNotInteger    = "not_integer"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeNotFinite     = "not_finite"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	CodeRequired      = "required"
	CodeUnsupported   = "unsupported"
)

// Issue is a single validation failure for a (type, value) pair.
type Issue struct {
	Path    string // JSON Pointer into the draft; "/value" for content failures.
	Code    string // One of the codes listed above.
	Type    Type   // Declared type the value was checked against.
	Value   any    // The offending value.
	Message string // Localized via i18n.
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying helper error.
	// Params carries structured parameters (e.g., {"min":-32768, "max":32767})
	// for i18n and observability.
	Params map[string]any
}

// Error renders the issue as "code at path: message".
func (i *Issue) Error() string {
	if i.Message == "" {
		return fmt.Sprintf("%s at %s", i.Code, i.Path)
	}
	return fmt.Sprintf("%s at %s: %s", i.Code, i.Path, i.Message)
}

func (i *Issue) Unwrap() error { return i.Cause }

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /valueInfo/objectTypeName
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var one *Issue
	if errors.As(err, &one) {
		return Issues{*one}, true
	}
	return nil, false
}

// newIssue builds a content issue with a localized message.
func newIssue(t Type, v any, code string, cause error, params map[string]any) *Issue {
	data := map[string]string{"type": t.String()}
	for k, p := range params {
		data[k] = fmt.Sprint(p)
	}
	return &Issue{
		Path:    "/value",
		Code:    code,
		Type:    t,
		Value:   v,
		Message: i18n.T(code, data),
		Cause:   cause,
		Params:  params,
	}
}

// TypeError is returned by ConvertToType. Its message keeps the historical
// "Value '<v>' is not of type <T>" wording.
type TypeError struct {
	Value any
	Type  Type
	Issue *Issue // Underlying validation failure, when there is one.
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("Value '%s' is not of type %s", Text(e.Value), e.Type)
}

func (e *TypeError) Unwrap() error {
	if e.Issue == nil {
		return nil
	}
	return e.Issue
}

// AsTypeError extracts a *TypeError from err.
func AsTypeError(err error) (*TypeError, bool) {
	var te *TypeError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
