package procvar_test

import (
	"testing"

	j "github.com/goccy/go-json"

	"github.com/cibseven/procvar"
)

func TestEncodeVariables(t *testing.T) {
	order := procvar.NewDraft().
		WithValue(`{"id":7}`).
		WithType(procvar.TypeJSON).
		WithType(procvar.TypeObject)
	count := procvar.Draft{Type: procvar.TypeInteger, Value: int64(3), ValueInfo: &procvar.ValueInfo{ObjectTypeName: "stale"}}

	out, err := procvar.EncodeVariables([]procvar.Variable{order.Variable("order"), count.Variable("count")})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got map[string]map[string]any
	if err := j.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode %s: %v", out, err)
	}
	if got["order"]["type"] != "Object" {
		t.Fatalf("expected Object type, got %v", got["order"])
	}
	info, ok := got["order"]["valueInfo"].(map[string]any)
	if !ok || info["objectTypeName"] != procvar.GenericMapTypeName || info["serializationDataFormat"] != procvar.JSONDataFormat {
		t.Fatalf("unexpected valueInfo %v", got["order"]["valueInfo"])
	}
	if got["count"]["type"] != "Integer" || got["count"]["value"] != float64(3) {
		t.Fatalf("unexpected count %v", got["count"])
	}
	if _, ok := got["count"]["valueInfo"]; ok {
		t.Fatalf("valueInfo must be omitted for non-Object types")
	}
}

func TestEncodeVariables_LaterDuplicateWins(t *testing.T) {
	a := procvar.Draft{Type: procvar.TypeString, Value: "first"}.Variable("x")
	b := procvar.Draft{Type: procvar.TypeString, Value: "second"}.Variable("x")
	out, err := procvar.EncodeVariables([]procvar.Variable{a, b})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got map[string]map[string]any
	if err := j.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got["x"]["value"] != "second" {
		t.Fatalf("unexpected %v", got)
	}
}
