package batch

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// readYAML decodes every document of a YAML stream and collects the entries
// listed under each document's "variables" key.
func readYAML(r io.Reader) ([]Entry, error) {
	dec := yaml.NewDecoder(r)
	var out []Entry
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		if len(doc.Content) == 0 {
			continue
		}
		items, err := variablesNode(doc.Content[0])
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			m, err := nodeToInterfaceStrict(item)
			if err != nil {
				return nil, err
			}
			e, err := entryFrom(m, len(out)+1, item.Line)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	}
}

// variablesNode returns the sequence items under the top-level "variables" key.
func variablesNode(n *yaml.Node) ([]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: document must be a mapping with a variables list", n.Line)
	}
	var items []*yaml.Node
	seen := false
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Value != "variables" {
			return nil, fmt.Errorf("line %d: unknown key %q", k.Line, k.Value)
		}
		if seen {
			return nil, &DuplicateKeyError{Key: k.Value, Line: k.Line, Col: k.Column, FirstLine: n.Content[0].Line, FirstCol: n.Content[0].Column}
		}
		seen = true
		if v.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: variables must be a list", v.Line)
		}
		items = v.Content
	}
	return items, nil
}

// nodeToInterfaceStrict converts a node into JSON-like Go values
// (map[string]any, []any, primitives). Duplicate keys cause an error.
func nodeToInterfaceStrict(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeToInterfaceStrict(n.Content[0])
	case yaml.AliasNode:
		return nodeToInterfaceStrict(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i < len(n.Content); i += 2 {
			k := n.Content[i]
			v := n.Content[i+1]
			key := k.Value
			if pos, dup := first[key]; dup {
				return nil, &DuplicateKeyError{Key: key, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[key] = [2]int{k.Line, k.Column}
			val, err := nodeToInterfaceStrict(v)
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeToInterfaceStrict(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return nil, nil
		case "!!bool":
			if b, err := strconv.ParseBool(n.Value); err == nil {
				return b, nil
			}
			return n.Value, nil
		case "!!int":
			if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
				return i, nil
			}
			return n.Value, nil
		case "!!float":
			if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
				return f, nil
			}
			return n.Value, nil
		default:
			// strings, timestamps and custom tags keep their text
			return n.Value, nil
		}
	default:
		return nil, nil
	}
}
