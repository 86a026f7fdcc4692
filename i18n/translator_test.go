package i18n

import "testing"

func TestTranslator_DefaultAndGerman(t *testing.T) {
	// default is en
	if msg := T("invalid_type", map[string]string{"type": "Integer"}); msg != "value is not a valid Integer" {
		t.Fatalf("unexpected english message %q", msg)
	}

	SetLanguage("de")
	if msg := T("too_big", map[string]string{"type": "Short", "max": "32767"}); msg != "Short darf höchstens 32767 sein" {
		t.Fatalf("unexpected german message %q", msg)
	}

	// unknown languages fall back to en
	SetLanguage("xx")
	if msg := T("required", map[string]string{"field": "objectTypeName"}); msg != "objectTypeName is required" {
		t.Fatalf("expected english fallback, got %q", msg)
	}
}

func TestTranslator_UnknownCodeEchoesCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X-" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("parse_error", nil); msg != "X-parse_error" {
		t.Fatalf("custom translator not used: %q", msg)
	}
}
