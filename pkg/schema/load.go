package schema

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Recognized keys of a field definition in a schema document. Anything else
// is preserved on the FieldSpec untouched.
var knownKeys = map[string]struct{}{
	"title":       {},
	"description": {},
	"type":        {},
	"enum":        {},
	"minLength":   {},
	"valueDocs":   {},
}

type fieldDoc struct {
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Type        string            `yaml:"type"`
	Enum        []string          `yaml:"enum"`
	MinLength   int               `yaml:"minLength"`
	ValueDocs   map[string]string `yaml:"valueDocs"`
}

type loader struct {
	log *slog.Logger
}

// Option configures schema document loading.
type Option func(*loader)

// WithLogger attaches a logger used to report loaded fields at debug level.
// Loading is silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(l *loader) {
		if log != nil {
			l.log = log
		}
	}
}

// ParseDocument decodes a declarative schema document into FieldSpecs, one
// per top-level key, preserving the document's field order. The document is
// YAML; JSON documents decode as well since YAML is a superset.
//
// Definitions that are internally inconsistent abort the whole load: a
// malformed schema must never be partially usable.
func ParseDocument(raw []byte, opts ...Option) ([]*FieldSpec, error) {
	l := &loader{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(l)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping of field definitions", ErrMalformedDocument)
	}

	specs := make([]*FieldSpec, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value
		spec, err := l.buildField(name, mapping.Content[i+1])
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// ParseField decodes a single field definition document into a FieldSpec.
func ParseField(name string, raw []byte, opts ...Option) (*FieldSpec, error) {
	l := &loader{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(l)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedDocument, name, err)
	}
	if len(node.Content) == 0 {
		return nil, fmt.Errorf("%w: field %q: empty definition", ErrMalformedDocument, name)
	}
	return l.buildField(name, node.Content[0])
}

func (l *loader) buildField(name string, node *yaml.Node) (*FieldSpec, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: field %q: definition must be a mapping", ErrMalformedDocument, name)
	}

	var doc fieldDoc
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedDocument, name, err)
	}

	// Second decode pass collects keys the struct does not recognize.
	var all map[string]any
	if err := node.Decode(&all); err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedDocument, name, err)
	}
	var extra map[string]any
	for k, v := range all {
		if _, known := knownKeys[k]; known {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}

	if doc.Type != "" && doc.Type != string(TypeString) {
		return nil, fmt.Errorf("%w: field %q: type %q", ErrUnsupportedFieldType, name, doc.Type)
	}

	var (
		spec *FieldSpec
		err  error
	)
	if doc.Enum != nil {
		spec, err = NewEnumField(name, doc.Title, doc.MinLength, doc.Enum, doc.ValueDocs)
	} else {
		spec, err = NewStringField(name, doc.Title, doc.MinLength)
	}
	if err != nil {
		return nil, err
	}
	spec.description = doc.Description
	spec.extra = extra

	l.log.Debug("loaded field definition",
		slog.String("field", name),
		slog.Int("enum_size", len(spec.allowed)),
		slog.Int("min_length", spec.minLength))

	return spec, nil
}
