package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Namespace bound to the reserved xml prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// CheckXML reports whether s is a well-formed XML document: tags are balanced
// and matched, there is exactly one root element, and no text other than
// whitespace appears outside it. An element carries each attribute once and
// uses only namespace prefixes declared in scope. The XML declaration may only
// open the document and a doctype may only precede the root; comments and
// processing instructions may appear anywhere.
func CheckXML(s string) error {
	dec := xml.NewDecoder(strings.NewReader(s))
	dec.Strict = true

	var open []xml.Name
	scopes := []map[string]string{{"xml": xmlNamespace}}
	roots := 0
	for n := 0; ; n++ {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if len(open) == 0 {
				roots++
				if roots > 1 {
					return fmt.Errorf("%w: second root <%s>", ErrMultipleRoots, qname(t.Name))
				}
			}
			scope, err := declare(scopes[len(scopes)-1], t)
			if err != nil {
				return err
			}
			if err := checkNames(scope, t); err != nil {
				return err
			}
			scopes = append(scopes, scope)
			open = append(open, t.Name)
		case xml.EndElement:
			if len(open) == 0 {
				return fmt.Errorf("%w: unexpected end element </%s>", ErrSyntax, qname(t.Name))
			}
			if top := open[len(open)-1]; top != t.Name {
				return fmt.Errorf("%w: element <%s> closed by </%s>", ErrSyntax, qname(top), qname(t.Name))
			}
			open = open[:len(open)-1]
			scopes = scopes[:len(scopes)-1]
		case xml.CharData:
			if len(open) == 0 && len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("%w: text outside the root element", ErrSyntax)
			}
		case xml.ProcInst:
			if strings.EqualFold(t.Target, "xml") && (n > 0 || t.Target != "xml") {
				return fmt.Errorf("%w: XML declaration must open the document", ErrSyntax)
			}
		case xml.Directive:
			if roots > 0 || len(open) > 0 {
				return fmt.Errorf("%w: doctype after the root element", ErrSyntax)
			}
		}
	}
	if len(open) != 0 {
		return fmt.Errorf("%w: unclosed element <%s>", ErrSyntax, qname(open[len(open)-1]))
	}
	if roots == 0 {
		return ErrNoRoot
	}
	return nil
}

// declare returns the prefix bindings in effect inside t. The parent map is
// shared when t declares nothing.
func declare(parent map[string]string, t xml.StartElement) (map[string]string, error) {
	var scope map[string]string
	for _, a := range t.Attr {
		if a.Name.Space != "xmlns" {
			continue
		}
		switch {
		case a.Value == "":
			return nil, fmt.Errorf("%w: prefix %q bound to an empty namespace", ErrSyntax, a.Name.Local)
		case a.Name.Local == "xmlns":
			return nil, fmt.Errorf("%w: prefix xmlns cannot be declared", ErrSyntax)
		case a.Name.Local == "xml" && a.Value != xmlNamespace,
			a.Name.Local != "xml" && a.Value == xmlNamespace:
			return nil, fmt.Errorf("%w: prefix xml is reserved", ErrSyntax)
		}
		if scope == nil {
			scope = make(map[string]string, len(parent)+1)
			for k, v := range parent {
				scope[k] = v
			}
		}
		scope[a.Name.Local] = a.Value
	}
	if scope == nil {
		return parent, nil
	}
	return scope, nil
}

// checkNames rejects undeclared prefixes and attributes repeated either by
// name or by namespace and local name.
func checkNames(scope map[string]string, t xml.StartElement) error {
	if p := t.Name.Space; p != "" {
		if _, ok := scope[p]; !ok {
			return fmt.Errorf("%w: undeclared prefix %q on <%s>", ErrSyntax, p, qname(t.Name))
		}
	}
	seen := make(map[xml.Name]bool, len(t.Attr))
	for _, a := range t.Attr {
		if seen[a.Name] {
			return fmt.Errorf("%w: duplicate attribute %s on <%s>", ErrSyntax, qname(a.Name), qname(t.Name))
		}
		seen[a.Name] = true

		p := a.Name.Space
		if p == "" || p == "xmlns" {
			continue
		}
		uri, ok := scope[p]
		if !ok {
			return fmt.Errorf("%w: undeclared prefix %q on attribute %s", ErrSyntax, p, qname(a.Name))
		}
		expanded := xml.Name{Space: "{" + uri + "}", Local: a.Name.Local}
		if seen[expanded] {
			return fmt.Errorf("%w: duplicate attribute {%s}%s on <%s>", ErrSyntax, uri, a.Name.Local, qname(t.Name))
		}
		seen[expanded] = true
	}
	return nil
}

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
