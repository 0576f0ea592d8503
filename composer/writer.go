// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToPlainMapping returns the flattened manifest without encoding it.
func ToPlainMapping(m *Manifest) *Object {
	return m.Flatten()
}

// Serialize encodes the manifest as indented JSON in declaration order.
// The result carries no trailing newline.
func Serialize(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(m.Flatten()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write serializes the manifest to path, ending the file with a newline.
func Write(path string, m *Manifest) error {
	data, err := Serialize(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// MarshalYAML renders the flattened manifest as YAML, keeping key order.
func MarshalYAML(m *Manifest) ([]byte, error) {
	node, err := yamlNode(m.Flatten())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	return buf.Bytes(), nil
}

func yamlNode(v any) (*yaml.Node, error) {
	switch value := v.(type) {
	case *Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if value == nil {
			return node, nil
		}
		for pair := value.Oldest(); pair != nil; pair = pair.Next() {
			child, err := yamlNode(pair.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pair.Key, err)
			}
			node.Content = append(node.Content, yamlString(pair.Key), child)
		}
		return node, nil
	case *Links:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if value == nil {
			return node, nil
		}
		for pair := value.Oldest(); pair != nil; pair = pair.Next() {
			node.Content = append(node.Content, yamlString(pair.Key), yamlString(pair.Value))
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i := range value {
			child, err := yamlNode(value[i])
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case string:
		return yamlString(value), nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(value.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value.String()}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(value)}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}

	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return node, nil
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
