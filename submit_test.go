package procvar_test

import (
	"testing"

	"github.com/cibseven/procvar"
)

func TestCheckSubmittable_ObjectNeedsMetadata(t *testing.T) {
	iss := procvar.CheckSubmittable(procvar.TypeObject, "payload", nil)
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}
	if iss[0].Path != "/valueInfo/objectTypeName" || iss[1].Path != "/valueInfo/serializationDataFormat" {
		t.Fatalf("unexpected paths: %v", iss)
	}
	for _, it := range iss {
		if it.Code != procvar.CodeRequired {
			t.Fatalf("expected required, got %s", it.Code)
		}
	}

	partial := &procvar.ValueInfo{ObjectTypeName: "com.example.Order"}
	iss = procvar.CheckSubmittable(procvar.TypeObject, "payload", partial)
	if len(iss) != 1 || iss[0].Params["field"] != "serializationDataFormat" {
		t.Fatalf("expected missing format only, got %v", iss)
	}
}

func TestCheckSubmittable_ObjectJSONPayload(t *testing.T) {
	info := &procvar.ValueInfo{ObjectTypeName: "any", SerializationDataFormat: "application/json"}
	if iss := procvar.CheckSubmittable(procvar.TypeObject, "invalid json", info); len(iss) != 1 || iss[0].Code != procvar.CodeParseError {
		t.Fatalf("expected parse_error, got %v", iss)
	}
	if !procvar.IsSubmittable(procvar.TypeObject, `{"id":1}`, info) {
		t.Fatalf("expected valid JSON payload to be submittable")
	}
	if !procvar.IsSubmittable(procvar.TypeObject, "", info) {
		t.Fatalf("expected empty payload to be submittable")
	}
	opaque := &procvar.ValueInfo{ObjectTypeName: "any", SerializationDataFormat: "application/x-java-serialized-object"}
	if !procvar.IsSubmittable(procvar.TypeObject, "invalid json", opaque) {
		t.Fatalf("expected opaque payload to be submittable")
	}
}

func TestCheckSubmittable_OtherTypesFollowValidate(t *testing.T) {
	if !procvar.IsSubmittable(procvar.TypeInteger, "12", nil) {
		t.Fatalf("expected 12 to be submittable")
	}
	iss := procvar.CheckSubmittable(procvar.TypeInteger, "1.5", nil)
	if len(iss) != 1 || iss[0].Code != procvar.CodeNotInteger {
		t.Fatalf("expected not_integer, got %v", iss)
	}
	if procvar.CheckSubmittable(procvar.TypeString, "x", nil) != nil {
		t.Fatalf("expected nil issues")
	}
}

func TestDenotesJSON(t *testing.T) {
	yes := []string{"application/json", "APPLICATION/JSON", "application/json; charset=utf-8", "application/vnd.api+json"}
	no := []string{"", "any", "application/xml", "text/plain", "application/x-java-serialized-object"}
	for _, f := range yes {
		if !procvar.DenotesJSON(f) {
			t.Fatalf("expected %q to denote JSON", f)
		}
	}
	for _, f := range no {
		if procvar.DenotesJSON(f) {
			t.Fatalf("expected %q not to denote JSON", f)
		}
	}
}
