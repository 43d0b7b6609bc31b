package ast

import "gopkg.in/yaml.v3"

// MarshalYAML keeps number literals as plain YAML integers in AST dumps,
// regardless of their magnitude.
func (lit *NumberLiteral) MarshalYAML() (interface{}, error) {
	if lit == nil {
		return nil, nil
	}
	value := "0"
	if lit.Value != nil {
		value = lit.Value.String()
	}
	payload := struct {
		Type  NodeType   `yaml:"type"`
		Value *yaml.Node `yaml:"value"`
	}{
		Type:  lit.Type,
		Value: &yaml.Node{Kind: yaml.ScalarNode, Value: value},
	}
	return payload, nil
}
