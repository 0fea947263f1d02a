package patternfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PatternSuffix is appended to a type name to form its default pattern name.
const PatternSuffix = "Pattern"

// skipKeyword is the scalar shorthand of FieldConfig{Skip: true}.
const skipKeyword = "skip"

// File is the root of a generator config.
type File struct {
	// Package is the import path (or pattern) of the package to load.
	Package string `yaml:"package"`
	// Output is the generated file. Relative paths are relative to the package directory.
	Output string `yaml:"output,omitempty"`
	// PackageName is the package clause of the generated file.
	PackageName string `yaml:"package_name,omitempty"`
	// Types lists the struct types to generate patterns for, in output order.
	Types []TypeConfig `yaml:"types"`
}

// TypeConfig configures the pattern of one struct type.
type TypeConfig struct {
	// Name of the struct type in Package.
	Name string `yaml:"name"`
	// Pattern is the name of the generated type. Defaults to Name + "Pattern".
	Pattern string `yaml:"pattern,omitempty"`
	// Fields holds per-field options keyed by field name.
	Fields map[string]FieldConfig `yaml:"fields,omitempty"`
}

// FieldConfig holds the options of one field.
type FieldConfig struct {
	// Skip leaves the field out of the pattern.
	Skip bool `yaml:"skip,omitempty"`
	// Pattern names another configured type whose pattern matches this field. The
	// field must hold that type, a pointer to it, or a slice of either.
	Pattern string `yaml:"pattern,omitempty"`
	// Compare names a func(actual, expected F, ctx *eq.Context) bool used instead of
	// eq.Compare for this field.
	Compare string `yaml:"compare,omitempty"`
}

// Type returns the config of the named type.
func (f *File) Type(name string) (*TypeConfig, bool) {
	for i := range f.Types {
		if f.Types[i].Name == name {
			return &f.Types[i], true
		}
	}

	return nil, false
}

// TypeNames returns the configured type names in order.
func (f *File) TypeNames() []string {
	names := make([]string, len(f.Types))
	for i, t := range f.Types {
		names[i] = t.Name
	}

	return names
}

// PatternName returns the configured pattern name, or the default one.
func (t *TypeConfig) PatternName() string {
	if t.Pattern != "" {
		return t.Pattern
	}

	return t.Name + PatternSuffix
}

// Field returns the options of a field; the zero FieldConfig if none are set.
func (t *TypeConfig) Field(name string) FieldConfig {
	return t.Fields[name]
}

// typeConfigFields decodes TypeConfig without its custom methods.
type typeConfigFields TypeConfig

// UnmarshalYAML accepts a bare type name or a full mapping.
func (t *TypeConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*t = TypeConfig{Name: name}

		return nil

	case yaml.MappingNode:
		return node.Decode((*typeConfigFields)(t))

	default:
		return fmt.Errorf("line %d: expected a type name or a mapping, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML writes a bare name when the type only uses defaults.
func (t TypeConfig) MarshalYAML() (any, error) {
	if len(t.Fields) == 0 && (t.Pattern == "" || t.Pattern == t.Name+PatternSuffix) {
		return t.Name, nil
	}

	return typeConfigFields(t), nil
}

// fieldConfigFields decodes FieldConfig without its custom methods.
type fieldConfigFields FieldConfig

// UnmarshalYAML accepts the scalar "skip" or a full mapping.
func (c *FieldConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}

		if s != skipKeyword {
			return fmt.Errorf("line %d: expected %q or a mapping, got %q", node.Line, skipKeyword, s)
		}

		*c = FieldConfig{Skip: true}

		return nil

	case yaml.MappingNode:
		return node.Decode((*fieldConfigFields)(c))

	default:
		return fmt.Errorf("line %d: expected %q or a mapping, got %v", node.Line, skipKeyword, kindName(node.Kind))
	}
}

// MarshalYAML writes "skip" for skipped fields.
func (c FieldConfig) MarshalYAML() (any, error) {
	if c.Skip && c.Pattern == "" && c.Compare == "" {
		return skipKeyword, nil
	}

	return fieldConfigFields(c), nil
}

func kindName(k yaml.Kind) string {
	switch k {
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
	default:
		return "node"
	}
}
