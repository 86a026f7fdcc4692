package engine

import (
	"errors"
	"io"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// ErrTrailingData is returned when a document carries more than one value.
var ErrTrailingData = errors.New("engine: trailing data after top-level value")

// Member is one key/value pair of an object node.
type Member struct {
	Key   string
	Value *Node
}

// Node is an order-preserving JSON value. Kind is KindBeginObject for objects,
// KindBeginArray for arrays, or one of the scalar kinds.
type Node struct {
	Kind    Kind
	Text    string // string contents or the number literal
	Bool    bool
	Members []Member
	Items   []*Node
}

// IsObject reports whether n is a JSON object.
func (n *Node) IsObject() bool { return n != nil && n.Kind == KindBeginObject }

// Lookup returns the value stored under key, or nil.
func (n *Node) Lookup(key string) *Node {
	if !n.IsObject() {
		return nil
	}
	for _, m := range n.Members {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// DecodeTree builds a Node from the token source and requires the source to
// be exhausted afterwards. A repeated key keeps its first position and takes
// the last value.
func DecodeTree(src TokenSource) (*Node, error) {
	tok, err := src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	n, err := decodeValue(src, tok)
	if err != nil {
		return nil, err
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return n, nil
}

func decodeValue(src TokenSource, tok Token) (*Node, error) {
	switch tok.Kind {
	case KindBeginObject:
		return decodeObject(src)
	case KindBeginArray:
		return decodeArray(src)
	case KindString:
		return &Node{Kind: KindString, Text: tok.String}, nil
	case KindNumber:
		return &Node{Kind: KindNumber, Text: tok.Number}, nil
	case KindBool:
		return &Node{Kind: KindBool, Bool: tok.Bool}, nil
	case KindNull:
		return &Node{Kind: KindNull}, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func decodeObject(src TokenSource) (*Node, error) {
	n := &Node{Kind: KindBeginObject}
	var index map[string]int
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return n, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(src, vt)
		if err != nil {
			return nil, err
		}
		if index == nil {
			index = make(map[string]int)
		}
		if i, dup := index[tok.String]; dup {
			n.Members[i].Value = v
			continue
		}
		index[tok.String] = len(n.Members)
		n.Members = append(n.Members, Member{Key: tok.String, Value: v})
	}
}

func decodeArray(src TokenSource) (*Node, error) {
	n := &Node{Kind: KindBeginArray}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return n, nil
		}
		v, err := decodeValue(src, tok)
		if err != nil {
			return nil, err
		}
		n.Items = append(n.Items, v)
	}
}
