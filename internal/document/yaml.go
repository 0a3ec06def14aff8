package document

import (
	"sort"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

// FromYAML parses a YAML document into ordered documents and lists.
func FromYAML(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return FromNode(&root)
}

// ToYAML renders a document as YAML keeping bson.D key order.
func ToYAML(v any) ([]byte, error) {
	node, err := ToNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// FromNode converts a YAML node tree. Mappings become bson.D, sequences bson.A.
func FromNode(n *yaml.Node) (any, error) {
	if n == nil {
		return nil, nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return FromNode(n.Content[0])

	case yaml.AliasNode:
		return FromNode(n.Alias)

	case yaml.MappingNode:
		doc := make(bson.D, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			value, err := FromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			doc = append(doc, bson.E{Key: n.Content[i].Value, Value: value})
		}
		return doc, nil

	case yaml.SequenceNode:
		list := make(bson.A, 0, len(n.Content))
		for _, c := range n.Content {
			value, err := FromNode(c)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil

	case yaml.ScalarNode:
		var value any
		if err := n.Decode(&value); err != nil {
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		return value, nil
	}

	return nil, errors.Errorf("unsupported yaml node kind %d at line %d", n.Kind, n.Line)
}

// ToNode converts documents and lists into a YAML node tree.
// Unordered maps are emitted with sorted keys.
func ToNode(v any) (*yaml.Node, error) {
	switch d := v.(type) {
	case bson.D:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range d {
			if err := appendPair(node, e.Key, e.Value); err != nil {
				return nil, err
			}
		}
		return node, nil

	case bson.M:
		return mapNode(d)

	case map[string]any:
		return mapNode(d)
	}

	if list, ok := List(v); ok {
		node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, item := range list {
			child, err := ToNode(item)
			if err != nil {
				return nil, err
			}
			// nested documents break flow style
			if child.Kind == yaml.MappingNode {
				node.Style = 0
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	}

	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return node, nil
}

func mapNode(m map[string]any) (*yaml.Node, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		if err := appendPair(node, k, m[k]); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func appendPair(node *yaml.Node, key string, value any) error {
	child, err := ToNode(value)
	if err != nil {
		return err
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		child,
	)
	return nil
}
