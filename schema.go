package pycore

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Schema is one declarative node describing a desired validator. Type is the
// required discriminator; every other field applies only to the kinds that
// consume it. Nodes are read once, at build time, and never retained by the
// compiled validator tree.
//
// A bare string is accepted anywhere a node is expected and is shorthand for
// {"type": <string>}.
type Schema struct {
	Type   string `json:"type" yaml:"type"`
	Strict *bool  `json:"strict,omitempty" yaml:"strict,omitempty"`

	// numeric bounds (int and float kinds; int kinds require whole values)
	MultipleOf *float64 `json:"multiple_of,omitempty" yaml:"multiple_of,omitempty"`
	Le         *float64 `json:"le,omitempty" yaml:"le,omitempty"`
	Lt         *float64 `json:"lt,omitempty" yaml:"lt,omitempty"`
	Ge         *float64 `json:"ge,omitempty" yaml:"ge,omitempty"`
	Gt         *float64 `json:"gt,omitempty" yaml:"gt,omitempty"`

	// string constraints
	Pattern         string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength       *int   `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength       *int   `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	StripWhitespace bool   `json:"strip_whitespace,omitempty" yaml:"strip_whitespace,omitempty"`
	ToLower         bool   `json:"to_lower,omitempty" yaml:"to_lower,omitempty"`
	ToUpper         bool   `json:"to_upper,omitempty" yaml:"to_upper,omitempty"`

	// collection kinds
	Items    *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems *int    `json:"min_items,omitempty" yaml:"min_items,omitempty"`
	MaxItems *int    `json:"max_items,omitempty" yaml:"max_items,omitempty"`

	// dict
	Keys   *Schema `json:"keys,omitempty" yaml:"keys,omitempty"`
	Values *Schema `json:"values,omitempty" yaml:"values,omitempty"`

	// model
	Fields map[string]*Schema `json:"fields,omitempty" yaml:"fields,omitempty"`

	// union
	Choices []*Schema `json:"choices,omitempty" yaml:"choices,omitempty"`

	// literal
	Expected []any `json:"expected,omitempty" yaml:"expected,omitempty"`

	// optional and recursive-container wrap a child node under "schema"
	Inner *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	// recursive-container slot name / recursive-ref target
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	SchemaRef string `json:"schema_ref,omitempty" yaml:"schema_ref,omitempty"`
}

// schemaAlias avoids recursing back into the custom unmarshallers.
type schemaAlias Schema

// UnmarshalYAML accepts either a mapping node or the bare-string shorthand.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var t string
		if err := node.Decode(&t); err != nil {
			return err
		}
		if t == "" {
			return fmt.Errorf("schema shorthand must be a non-empty type name")
		}
		*s = Schema{Type: t}
		return nil
	}
	var a schemaAlias
	if err := node.Decode(&a); err != nil {
		return err
	}
	*s = Schema(a)
	return nil
}

// UnmarshalJSON accepts either an object or the bare-string shorthand.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var t string
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		if t == "" {
			return fmt.Errorf("schema shorthand must be a non-empty type name")
		}
		*s = Schema{Type: t}
		return nil
	}
	var a schemaAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Schema(a)
	return nil
}

// SchemaFromYAML decodes a schema definition from YAML. Decode failures are
// reported as a SchemaError since they are build-time structural problems.
func SchemaFromYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &SchemaError{Message: "invalid YAML schema", Cause: err}
	}
	return &s, nil
}

// SchemaFromJSON decodes a schema definition from JSON.
func SchemaFromJSON(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &SchemaError{Message: "invalid JSON schema", Cause: err}
	}
	return &s, nil
}
