// Package batch reads files of named variable drafts for the check command.
//
// A batch file lists variables in the engine's type/value/valueInfo shape:
//
//	variables:
//	  - name: amount
//	    type: Double
//	    value: 10.5
//	  - name: order
//	    type: Object
//	    value: '{"id": 7}'
//	    valueInfo:
//	      objectTypeName: java.util.HashMap
//	      serializationDataFormat: application/json
//
// YAML input may hold several documents; duplicate keys are rejected with
// their positions. JSON input uses the same shape.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cibseven/procvar"
)

// Format names the encoding of a batch file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension; anything but .json is YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Entry is one named draft read from a batch file.
type Entry struct {
	Index int // 1-based position in the file.
	Line  int // Source line for YAML input; 0 when unknown.
	Name  string
	Draft procvar.Draft
}

// Position renders where the entry came from, e.g. "line 4" or "#2".
func (e Entry) Position() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d", e.Line)
	}
	return fmt.Sprintf("#%d", e.Index)
}

// EntryError reports a malformed entry.
type EntryError struct {
	Index int
	Line  int
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: %v", Entry{Index: e.Index, Line: e.Line}.Position(), e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// ReadFile reads a batch file, choosing the format from its extension.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck
	return Read(f, FormatFor(path))
}

// Read decodes entries from r. Variable names must be unique.
func Read(r io.Reader, format Format) ([]Entry, error) {
	var (
		entries []Entry
		err     error
	)
	if format == FormatJSON {
		entries, err = readJSON(r)
	} else {
		entries, err = readYAML(r)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if prev, dup := seen[e.Name]; dup {
			return nil, &EntryError{Index: e.Index, Line: e.Line,
				Err: fmt.Errorf("duplicate variable %q (first at %s)", e.Name, prev.Position())}
		}
		seen[e.Name] = e
	}
	return entries, nil
}

func entryFrom(raw any, index, line int) (Entry, error) {
	fail := func(format string, a ...any) (Entry, error) {
		return Entry{}, &EntryError{Index: index, Line: line, Err: fmt.Errorf(format, a...)}
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return fail("entry must be a mapping")
	}

	e := Entry{Index: index, Line: line, Draft: procvar.Draft{Type: procvar.TypeString}}
	for k, v := range m {
		switch k {
		case "name":
			s, ok := v.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return fail("name must be a non-empty string")
			}
			e.Name = s
		case "type":
			s, _ := v.(string)
			t, err := procvar.ParseType(s)
			if err != nil {
				return fail("%v", err)
			}
			e.Draft.Type = t
		case "value":
			if !isScalar(v) {
				return fail("%w; quote JSON payloads as strings", ErrNotScalar)
			}
			e.Draft.Value = v
		case "valueInfo":
			info, err := valueInfoFrom(v)
			if err != nil {
				return fail("valueInfo: %v", err)
			}
			e.Draft.ValueInfo = info
		default:
			return fail("unknown key %q", k)
		}
	}
	if e.Name == "" {
		return fail("name is required")
	}
	if _, ok := m["type"]; !ok {
		return fail("type is required")
	}
	return e, nil
}

func valueInfoFrom(v any) (*procvar.ValueInfo, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("must be a mapping")
	}
	info := &procvar.ValueInfo{}
	for k, f := range m {
		s, ok := f.(string)
		if !ok && f != nil {
			return nil, fmt.Errorf("%s must be a string", k)
		}
		switch k {
		case "objectTypeName":
			info.ObjectTypeName = s
		case "serializationDataFormat":
			info.SerializationDataFormat = s
		default:
			return nil, fmt.Errorf("unknown key %q", k)
		}
	}
	return info, nil
}
