package batch

import (
	stdjson "encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cibseven/procvar"
)

const sampleYAML = `variables:
  - name: amount
    type: Double
    value: 10.5
  - name: count
    type: Long
    value: 42
  - name: approved
    type: Boolean
    value: true
  - name: due
    type: Date
    value: 2013-01-23T13:42:42
  - name: order
    type: Object
    value: '{"id": 7}'
    valueInfo:
      objectTypeName: java.util.HashMap
      serializationDataFormat: application/json
  - name: nothing
    type: Null
    value: ~
`

func TestRead_YAML(t *testing.T) {
	entries, err := Read(strings.NewReader(sampleYAML), FormatYAML)
	require.NoError(t, err)
	require.Len(t, entries, 6)

	assert.Equal(t, "amount", entries[0].Name)
	assert.Equal(t, 2, entries[0].Line)
	assert.Equal(t, 1, entries[0].Index)
	assert.Equal(t, procvar.TypeDouble, entries[0].Draft.Type)
	assert.Equal(t, 10.5, entries[0].Draft.Value)

	assert.Equal(t, int64(42), entries[1].Draft.Value)
	assert.Equal(t, true, entries[2].Draft.Value)
	assert.Equal(t, "2013-01-23T13:42:42", entries[3].Draft.Value)

	order := entries[4].Draft
	assert.Equal(t, procvar.TypeObject, order.Type)
	require.NotNil(t, order.ValueInfo)
	assert.Equal(t, "application/json", order.ValueInfo.SerializationDataFormat)
	assert.Nil(t, entries[5].Draft.Value)
}

func TestRead_YAMLMultiDocument(t *testing.T) {
	in := "variables:\n  - {name: a, type: String, value: x}\n---\nvariables:\n  - {name: b, type: Integer, value: '7'}\n"
	entries, err := Read(strings.NewReader(in), FormatYAML)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[1].Name)
	assert.Equal(t, 2, entries[1].Index)
	assert.Equal(t, "7", entries[1].Draft.Value)
}

func TestRead_YAMLDuplicateKey(t *testing.T) {
	in := "variables:\n  - name: a\n    type: String\n    name: b\n"
	_, err := Read(strings.NewReader(in), FormatYAML)

	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "name", dup.Key)
	assert.Equal(t, 4, dup.Line)
	assert.Equal(t, 2, dup.FirstLine)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"unknown top key", "vars: []\n", `unknown key "vars"`},
		{"not a list", "variables: {}\n", "variables must be a list"},
		{"missing name", "variables:\n  - type: String\n", "name is required"},
		{"missing type", "variables:\n  - name: a\n", "type is required"},
		{"unknown type", "variables:\n  - {name: a, type: Map}\n", "unknown type"},
		{"nested value", "variables:\n  - {name: a, type: Json, value: {a: 1}}\n", "quote JSON payloads"},
		{"unknown entry key", "variables:\n  - {name: a, type: String, extra: 1}\n", `unknown key "extra"`},
		{"bad valueInfo", "variables:\n  - {name: a, type: Object, valueInfo: x}\n", "valueInfo: must be a mapping"},
		{"duplicate name", "variables:\n  - {name: a, type: String}\n  - {name: a, type: Long}\n", `duplicate variable "a" (first at line 2)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in), FormatYAML)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRead_JSON(t *testing.T) {
	in := `{"variables": [
		{"name": "big", "type": "Long", "value": 9007199254740993},
		{"name": "ratio", "type": "Double", "value": 0.1},
		{"name": "flag", "type": "Boolean", "value": false}
	]}`
	entries, err := Read(strings.NewReader(in), FormatJSON)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, int64(9007199254740993), entries[0].Draft.Value)
	assert.Equal(t, stdjson.Number("0.1"), entries[1].Draft.Value)
	assert.Equal(t, false, entries[2].Draft.Value)
	assert.Equal(t, "#2", entries[1].Position())
}

func TestRead_JSONUnknownField(t *testing.T) {
	_, err := Read(strings.NewReader(`{"vars": []}`), FormatJSON)
	assert.Error(t, err)
}

func TestReadFile_PicksFormat(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "vars.JSON")
	require.NoError(t, os.WriteFile(p, []byte(`{"variables":[{"name":"a","type":"String","value":"x"}]}`), 0o600))

	entries, err := ReadFile(p)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FormatJSON, FormatFor(p))
	assert.Equal(t, FormatYAML, FormatFor("vars.yml"))
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"12", int64(12)},
		{"2.50", stdjson.Number("2.50")},
		{"true", true},
		{"null", nil},
		{`"text"`, "text"},
	}
	for _, tt := range tests {
		got, err := ParseLiteral(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLiteral(`{"a":1}`)
	assert.ErrorIs(t, err, ErrNotScalar)

	_, err = ParseLiteral("1 2")
	assert.Error(t, err)

	_, err = ParseLiteral("yes")
	assert.Error(t, err)
}
