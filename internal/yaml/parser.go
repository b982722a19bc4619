// Package yaml offers a simplified YAML parser abstraction that keeps the document order of map keys and the source
// line of every node. Graph files depend on both: edges are attached in the order they are written, and errors point
// at the offending line.
package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// New creates a new YAML parser.
func New() Parser {
	return &parser{}
}

// Parser is a YAML parser that parses into a simplified value structure.
type Parser interface {
	// Parse parses the provided value into the simplified node representation.
	Parse(data []byte) (Node, error)
}

// TypeID represents the value structure in accordance with the YAML specification 10.1.1.
// See https://yaml.org/spec/1.2.2/#101-failsafe-schema for details.
type TypeID string

const (
	// TypeIDMap is a generic map in accordance with the YAML specification 10.1.1.1.
	TypeIDMap TypeID = "map"
	// TypeIDSequence is a generic sequence in accordance with YAML specification 10.1.1.2.
	TypeIDSequence TypeID = "seq"
	// TypeIDString is a generic string in accordance with YAML specification 10.1.1.3.
	TypeIDString TypeID = "str"
	// TypeIDEmpty is an empty document or an explicit null.
	TypeIDEmpty TypeID = "empty"
)

// Node is a simplified representation of a YAML node.
type Node interface {
	Type() TypeID
	// Line returns the 1-based line the node starts on, or 0 if unknown.
	Line() int
	// Contents returns the contents as further Node items. For maps, this will contain keys and values in
	// alternating order, while for sequences this will contain as many nodes as there are items. For strings, this
	// will contain no items.
	Contents() []Node
	// Value returns the value in case of a string node.
	Value() string
	// MapKeys returns the keys of a map node in document order.
	MapKeys() []string
	// MapKey returns the value for the given key of a map node.
	MapKey(key string) (Node, bool)
	// Strings returns the values of a sequence of strings.
	Strings() ([]string, error)
}

type node struct {
	typeID   TypeID
	line     int
	contents []Node
	value    string
}

// EmptyNode returns a node that represents an empty document.
func EmptyNode() Node {
	return &node{typeID: TypeIDEmpty}
}

func (n node) Contents() []Node {
	return n.contents
}

func (n node) Type() TypeID {
	return n.typeID
}

func (n node) Line() int {
	return n.line
}

func (n node) Value() string {
	return n.value
}

func (n node) MapKeys() []string {
	if n.typeID != TypeIDMap {
		return nil
	}
	keys := make([]string, 0, len(n.contents)/2)
	for i := 0; i+1 < len(n.contents); i += 2 {
		keys = append(keys, n.contents[i].Value())
	}
	return keys
}

func (n node) MapKey(key string) (Node, bool) {
	if n.typeID != TypeIDMap {
		return nil, false
	}
	for i := 0; i+1 < len(n.contents); i += 2 {
		if n.contents[i].Value() == key {
			return n.contents[i+1], true
		}
	}
	return nil, false
}

func (n node) Strings() ([]string, error) {
	switch n.typeID {
	case TypeIDEmpty:
		return nil, nil
	case TypeIDSequence:
	default:
		return nil, fmt.Errorf("expected a sequence on line %d, found %s", n.line, n.typeID)
	}
	result := make([]string, len(n.contents))
	for i, item := range n.contents {
		if item.Type() != TypeIDString {
			return nil, fmt.Errorf("expected a string on line %d, found %s", item.Line(), item.Type())
		}
		result[i] = item.Value()
	}
	return result, nil
}

type parser struct {
}

func (p parser) Parse(data []byte) (Node, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	if n.Kind == 0 {
		return EmptyNode(), nil
	}
	return p.transform(&n)
}

func (p parser) transform(n *yaml.Node) (Node, error) {
	var t TypeID
	switch n.Kind {
	case yaml.MappingNode:
		t = TypeIDMap
	case yaml.SequenceNode:
		t = TypeIDSequence
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			t = TypeIDEmpty
		} else {
			t = TypeIDString
		}
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return EmptyNode(), nil
		}
		return p.transform(n.Content[0])
	default:
		return nil, fmt.Errorf("unsupported node type on line %d: %d", n.Line, n.Kind)
	}

	contents := make([]Node, len(n.Content))
	for i, subNode := range n.Content {
		subContent, err := p.transform(subNode)
		if err != nil {
			return nil, err
		}
		contents[i] = subContent
	}

	return &node{
		t,
		n.Line,
		contents,
		n.Value,
	}, nil
}
