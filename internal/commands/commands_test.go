package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cibseven/procvar/i18n"
)

// run executes the root command in an empty working directory and returns
// stdout, stderr and the error.
func run(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { i18n.SetLanguage("en") })

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(t.TempDir()))

	cmd := NewRootCmd(func(k string) string { return env[k] })
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestTypesCmd(t *testing.T) {
	out, _, err := run(t, nil, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "TYPE")
	assert.Regexp(t, `Boolean\s+true`, out)
	assert.Regexp(t, `Json\s+"\{\}"`, out)
	assert.Regexp(t, `Date\s+null`, out)

	out, _, err = run(t, nil, "types", "-o", "json")
	require.NoError(t, err)
	var views []map[string]any
	require.NoError(t, j.Unmarshal([]byte(out), &views))
	assert.Len(t, views, 12)
	assert.Equal(t, "String", views[0]["name"])
}

func TestValidateCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		wantOut  string
		language string
	}{
		{name: "in range", args: []string{"--type", "Short", "--value", "32767"}, wantOut: "ok"},
		{name: "too big", args: []string{"--type", "Short", "--value", "32768"}, wantErr: true, wantOut: "too_big at /value: Short must be at most 32767"},
		{name: "boolean text rejected", args: []string{"--type", "Boolean", "--value", "true"}, wantErr: true, wantOut: "invalid_type"},
		{name: "boolean literal", args: []string{"--type", "Boolean", "--literal", "--value", "true"}, wantOut: "ok"},
		{name: "date rollover", args: []string{"--type", "Date", "--value", "2013-01-23T60:42:40"}, wantErr: true, wantOut: "hint: 2006-01-02T15:04:05"},
		{name: "null", args: []string{"--type", "Json", "--null"}, wantOut: "ok"},
		{name: "object needs metadata", args: []string{"--type", "Object", "--value", "x"}, wantErr: true, wantOut: "required at /valueInfo/objectTypeName"},
		{name: "object json format", args: []string{"--type", "Object", "--value", "invalid json", "--object-type", "any", "--format", "application/json"}, wantErr: true, wantOut: "parse_error"},
		{name: "object opaque format", args: []string{"--type", "Object", "--value", "invalid json", "--object-type", "any", "--format", "any"}, wantOut: "ok"},
		{name: "long int64 range", args: []string{"--long-range", "int64", "--type", "Long", "--value", "9223372036854775807"}, wantOut: "ok"},
		{name: "german", args: []string{"--lang", "de", "--type", "Integer", "--value", "1.5"}, wantErr: true, wantOut: "Integer erfordert eine ganze Zahl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, nil, append([]string{"validate"}, tt.args...)...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrFailed)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestValidateCmd_FlagErrors(t *testing.T) {
	_, _, err := run(t, nil, "validate", "--value", "1")
	assert.ErrorContains(t, err, "--type is required")

	_, _, err = run(t, nil, "validate", "--type", "Map", "--value", "1")
	assert.ErrorContains(t, err, "unknown type")

	_, _, err = run(t, nil, "validate", "--type", "Long", "--literal", "--value", "[1]")
	assert.Error(t, err)
}

func TestCoerceCmd(t *testing.T) {
	out, _, err := run(t, nil, "coerce", "--from", "Json", "--to", "Object", "--value", `{"a":"b"}`)
	require.NoError(t, err)

	var got struct {
		Type      string            `json:"type"`
		Value     string            `json:"value"`
		ValueInfo map[string]string `json:"valueInfo"`
	}
	require.NoError(t, j.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Object", got.Type)
	assert.Equal(t, "{\n  \"a\": \"b\"\n}", got.Value)
	assert.Equal(t, "java.util.HashMap", got.ValueInfo["objectTypeName"])

	out, _, err = run(t, nil, "coerce", "--from", "Long", "--to", "Json", "--literal", "--value", "100")
	require.NoError(t, err)
	assert.Contains(t, out, `"value": "{}"`)

	out, _, err = run(t, nil, "coerce", "--to", "Json", "--value", "10.50")
	require.NoError(t, err)
	assert.Contains(t, out, `"value": "10.5"`)
}

func TestConvertCmd(t *testing.T) {
	out, _, err := run(t, nil, "convert", "--type", "Integer", "--value", "100")
	require.NoError(t, err)
	assert.Equal(t, "100\n", out)

	_, _, err = run(t, nil, "convert", "--type", "Integer", "--value", "100.10")
	require.Error(t, err)
	assert.Equal(t, "Value '100.10' is not of type Integer", err.Error())

	out, _, err = run(t, nil, "convert", "--type", "Boolean", "--value", "TRUE")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

const batchYAML = `variables:
  - name: amount
    type: Double
    value: 10.5
  - name: order
    type: Object
    value: '{"id": 7}'
    valueInfo:
      objectTypeName: java.util.HashMap
      serializationDataFormat: application/json
`

func TestCheckCmd(t *testing.T) {
	path := writeFile(t, "vars.yaml", batchYAML)

	out, _, err := run(t, nil, "check", path)
	require.NoError(t, err)
	assert.Regexp(t, `amount\s+Double\s+line 2\s+ok`, out)
	assert.Regexp(t, `order\s+Object\s+line 5\s+ok`, out)
}

func TestCheckCmd_ReportsFailures(t *testing.T) {
	path := writeFile(t, "vars.yaml", batchYAML+`  - name: small
    type: Short
    value: 40000
`)

	out, _, err := run(t, nil, "check", path, "-o", "json")
	assert.ErrorIs(t, err, ErrFailed)

	var results []checkResult
	require.NoError(t, j.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	assert.True(t, results[0].OK)
	assert.False(t, results[2].OK)
	require.Len(t, results[2].Issues, 1)
	assert.Equal(t, "too_big", results[2].Issues[0].Code)
}

func TestCheckCmd_Emit(t *testing.T) {
	path := writeFile(t, "vars.yaml", batchYAML+`  - name: broken
    type: Json
    value: '{"a":1,,}'
`)

	out, stderr, err := run(t, nil, "check", path, "--emit")
	assert.ErrorIs(t, err, ErrFailed)
	assert.Contains(t, stderr, "broken")

	var payload map[string]map[string]any
	require.NoError(t, j.Unmarshal([]byte(out), &payload))
	assert.Len(t, payload, 2)
	assert.Equal(t, "Double", payload["amount"]["type"])
	assert.Contains(t, payload["order"], "valueInfo")
	assert.NotContains(t, payload, "broken")
}

func TestCheckCmd_ConfigOutput(t *testing.T) {
	cfg := writeFile(t, "procvar.yaml", "version: 1\noutput: yaml\n")
	path := writeFile(t, "vars.yaml", batchYAML)

	out, _, err := run(t, map[string]string{EnvConfig: cfg}, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "- name: amount")
}

func TestCheckCmd_MissingFile(t *testing.T) {
	_, _, err := run(t, nil, "check", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read ")
}

func TestInitCmd(t *testing.T) {
	target := filepath.Join(t.TempDir(), "procvar.yaml")

	out, _, err := run(t, nil, "init", "--file", target, "--lang", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	content, err := os.ReadFile(target) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(content), "language: de")

	_, _, err = run(t, nil, "init", "--file", target)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = run(t, nil, "init", "--file", target, "--force")
	assert.NoError(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, nil, "--verbose", "validate", "--type", "String", "--value", "x")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "msg=validated")
}

func TestInvalidConfigFromEnv(t *testing.T) {
	cfg := writeFile(t, "procvar.yaml", "version: 7\n")
	_, _, err := run(t, map[string]string{EnvConfig: cfg}, "types")
	assert.ErrorContains(t, err, "invalid configuration")
}
