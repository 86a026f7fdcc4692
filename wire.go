package procvar

import (
	j "github.com/goccy/go-json"
)

// Variable is a named draft in the shape of the engine's REST variable
// assignment: {"type": ..., "value": ..., "valueInfo": {...}}.
type Variable struct {
	Name      string     `json:"-"`
	Type      Type       `json:"type"`
	Value     any        `json:"value"`
	ValueInfo *ValueInfo `json:"valueInfo,omitempty"`
}

// Variable names the draft for transport. ValueInfo is kept for Object only.
func (d Draft) Variable(name string) Variable {
	v := Variable{Name: name, Type: d.Type, Value: d.Value}
	if d.Type == TypeObject && d.ValueInfo != nil {
		info := *d.ValueInfo
		v.ValueInfo = &info
	}
	return v
}

// EncodeVariables renders variables as a JSON object keyed by name, the body
// the engine expects for variable modifications. Later duplicates win.
func EncodeVariables(vars []Variable) ([]byte, error) {
	m := make(map[string]Variable, len(vars))
	for _, v := range vars {
		m[v.Name] = v
	}
	return j.MarshalIndent(m, "", "  ")
}
