// Package yml walks yaml.v3 nodes preserving mapping key order.
package yml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/fluxreg/model"
	"gopkg.in/yaml.v3"
)

type (
	Node yaml.Node
)

// Root returns the document content node
func (n *Node) Root() *Node {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		return (*Node)(n.Content[0])
	}
	return n
}

// Pairs calls callback for every mapping entry in declaration order
func (n *Node) Pairs(callback func(key string, node *Node) error) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at line %d, but had %s", n.Line, kindName(n.Kind))
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		value := (*Node)(resolveAlias(n.Content[i+1]))
		if err := callback(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Interface converts the node into Go values; mappings become ordered *model.Fields
func (n *Node) Interface() interface{} {
	switch n.Kind {
	case yaml.DocumentNode:
		if root := n.Root(); root != nil {
			return root.Interface()
		}
		return nil
	case yaml.AliasNode:
		return (*Node)(resolveAlias((*yaml.Node)(n))).Interface()
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!str":
			return n.Value
		case "!!bool":
			return strings.EqualFold(n.Value, "true")
		case "!!null":
			return nil
		case "!!float":
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return n.Value
			}
			return f
		case "!!int":
			i, err := strconv.Atoi(n.Value)
			if err != nil {
				return n.Value
			}
			return i
		default:
			return n.Value
		}
	case yaml.MappingNode:
		fields := &model.Fields{}
		_ = n.Pairs(func(key string, value *Node) error {
			fields.Put(key, value.Interface())
			return nil
		})
		return fields
	case yaml.SequenceNode:
		var aSlice = make([]interface{}, 0, len(n.Content))
		for i := 0; i < len(n.Content); i++ {
			aSlice = append(aSlice, (*Node)(n.Content[i]).Interface())
		}
		return aSlice
	}
	return nil
}

// Fields returns mapping node as ordered fields, empty documents yield empty fields
func (n *Node) Fields() (*model.Fields, error) {
	root := n.Root()
	if root == nil || root.Kind == 0 || (root.Kind == yaml.ScalarNode && root.Tag == "!!null") {
		return &model.Fields{}, nil
	}
	fields, ok := root.Interface().(*model.Fields)
	if !ok {
		return nil, fmt.Errorf("expected mapping at line %d, but had %s", root.Line, kindName(root.Kind))
	}
	return fields, nil
}

// Decode parses YAML into ordered fields
func Decode(data []byte) (*model.Fields, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return (*Node)(&node).Fields()
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "empty"
}
