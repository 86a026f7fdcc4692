package procvar

import (
	"mime"
	"strings"

	"github.com/cibseven/procvar/i18n"
)

// CheckSubmittable collects every reason the triple may not be sent to the
// engine. For Object it requires both ValueInfo fields in addition to
// Validate; for other types Validate alone decides. The result is nil when
// the triple is submittable.
func CheckSubmittable(t Type, v any, info *ValueInfo, opts ...Options) Issues {
	var iss Issues
	if t == TypeObject {
		if info == nil || strings.TrimSpace(info.ObjectTypeName) == "" {
			iss = AppendIssues(iss, requiredIssue(t, "objectTypeName"))
		}
		if info == nil || strings.TrimSpace(info.SerializationDataFormat) == "" {
			iss = AppendIssues(iss, requiredIssue(t, "serializationDataFormat"))
		}
	}
	if one := Validate(t, v, info, opts...); one != nil {
		iss = AppendIssues(iss, *one)
	}
	return iss
}

// IsSubmittable reports whether CheckSubmittable finds nothing.
func IsSubmittable(t Type, v any, info *ValueInfo, opts ...Options) bool {
	return len(CheckSubmittable(t, v, info, opts...)) == 0
}

// DenotesJSON reports whether a serialization data format names JSON:
// application/json or any +json media type, parameters ignored.
func DenotesJSON(format string) bool {
	mt, _, err := mime.ParseMediaType(format)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(format))
	}
	return mt == JSONDataFormat || strings.HasSuffix(mt, "+json")
}

func requiredIssue(t Type, field string) Issue {
	return Issue{
		Path:    "/valueInfo/" + field,
		Code:    CodeRequired,
		Type:    t,
		Message: i18n.T(CodeRequired, map[string]string{"field": field, "type": t.String()}),
		Params:  map[string]any{"field": field},
	}
}
