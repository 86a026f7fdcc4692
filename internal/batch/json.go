package batch

import (
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

type jsonFile struct {
	Variables []map[string]any `json:"variables"`
}

// readJSON decodes a single JSON document of the same shape as the YAML
// input. Numbers stay exact until the engine sees them.
func readJSON(r io.Reader) ([]Entry, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var f jsonFile
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after the JSON document")
	}

	out := make([]Entry, 0, len(f.Variables))
	for i, raw := range f.Variables {
		m := make(map[string]any, len(raw))
		for k, v := range raw {
			m[k] = normalize(v)
		}
		e, err := entryFrom(m, i+1, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
