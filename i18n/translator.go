package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "type", "min" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Placeholders
// of the form {key} are replaced from data.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":   "value is not a valid {type}",
		"not_integer":    "{type} requires a whole number",
		"too_small":      "{type} must be at least {min}",
		"too_big":        "{type} must be at most {max}",
		"not_finite":     "{type} requires a finite number",
		"invalid_format": "expected a date in the form YYYY-MM-DDTHH:mm:ss",
		"parse_error":    "value is not well-formed {type}",
		"required":       "{field} is required",
		"unsupported":    "{type} values cannot be entered here",
	},
	"de": {
		"invalid_type":   "Wert ist kein gültiger {type}",
		"not_integer":    "{type} erfordert eine ganze Zahl",
		"too_small":      "{type} muss mindestens {min} sein",
		"too_big":        "{type} darf höchstens {max} sein",
		"not_finite":     "{type} erfordert eine endliche Zahl",
		"invalid_format": "Datum im Format JJJJ-MM-TTTHH:mm:ss erwartet",
		"parse_error":    "Wert ist kein wohlgeformtes {type}",
		"required":       "{field} ist erforderlich",
		"unsupported":    "{type}-Werte können hier nicht eingegeben werden",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// Languages lists the languages of the built-in dictionary.
func Languages() []string { return []string{"en", "de"} }

// SetLanguage switches the built-in Translator language ("en"/"de").
// Unknown languages fall back to "en".
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
