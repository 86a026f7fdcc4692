package codec

import (
	stdjson "encoding/json"
	"fmt"

	eng "github.com/cibseven/procvar/internal/engine"
)

// JSONIndent is the indentation used by PrettyJSON.
const JSONIndent = "  "

// ValidJSON checks s against the strict JSON text grammar (RFC 8259): no
// trailing commas, no single quotes, exact literals, well-formed numbers and
// balanced brackets. The empty string is not JSON.
func ValidJSON(s string) error {
	var raw stdjson.RawMessage
	if err := stdjson.Unmarshal([]byte(s), &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return nil
}

// ParseJSON validates s and decodes it into an order-preserving tree.
func ParseJSON(s string) (*eng.Node, error) {
	if err := ValidJSON(s); err != nil {
		return nil, err
	}
	n, err := eng.DecodeTree(eng.NewBytes([]byte(s)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return n, nil
}

// PrettyJSON re-renders JSON text with two-space indentation, ordering members
// as a script host does and normalizing numbers ("10.50" becomes "10.5").
func PrettyJSON(s string) (string, error) {
	n, err := ParseJSON(s)
	if err != nil {
		return "", err
	}
	return RenderJSON(n), nil
}

// IsJSONObject reports whether s is valid JSON whose top-level value is an object.
func IsJSONObject(s string) bool {
	n, err := ParseJSON(s)
	return err == nil && n.IsObject()
}

// RenderJSON renders a parsed tree the way PrettyJSON does.
func RenderJSON(n *eng.Node) string { return eng.Render(n, JSONIndent) }
