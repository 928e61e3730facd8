package schema

import (
	"fmt"
	"maps"
	"slices"
)

// FieldType identifies the primitive a field accepts. The set is closed:
// validation dispatches on it explicitly, there is no dynamic field kind.
type FieldType string

const (
	// TypeString accepts string values, optionally constrained by a minimum
	// length and a controlled vocabulary.
	TypeString FieldType = "string"
)

// FieldSpec is an immutable description of one field's constraints. It is
// built once at schema-load time and is safe to share across goroutines.
type FieldSpec struct {
	name        string
	title       string
	description string
	ftype       FieldType
	minLength   int
	allowed     []string
	docs        map[string]string
	extra       map[string]any
}

// NewStringField creates a free-form string field constrained only by a
// minimum length.
func NewStringField(name, title string, minLength int) (*FieldSpec, error) {
	if minLength < 0 {
		return nil, fmt.Errorf("%w: field %q: negative minLength %d", ErrInvalidEnumDefinition, name, minLength)
	}
	return &FieldSpec{
		name:      name,
		title:     title,
		ftype:     TypeString,
		minLength: minLength,
	}, nil
}

// NewEnumField creates a string field restricted to a controlled vocabulary.
// The values slice carries the declared order, which is preserved for
// documentation rendering. The docs map may document any subset of the
// values; values without supplied prose get an empty documentation entry so
// that every member is describable. Documentation for a non-member is
// rejected.
func NewEnumField(name, title string, minLength int, values []string, docs map[string]string) (*FieldSpec, error) {
	if minLength < 0 {
		return nil, fmt.Errorf("%w: field %q: negative minLength %d", ErrInvalidEnumDefinition, name, minLength)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: field %q: empty enum", ErrInvalidEnumDefinition, name)
	}

	valueDocs := make(map[string]string, len(values))
	for _, v := range values {
		if _, exists := valueDocs[v]; exists {
			return nil, fmt.Errorf("%w: field %q: value %q", ErrDuplicateEnumValue, name, v)
		}
		if len(v) < minLength {
			return nil, fmt.Errorf("%w: field %q: value %q is shorter than %d", ErrInconsistentMinLength, name, v, minLength)
		}
		valueDocs[v] = ""
	}
	for v, doc := range docs {
		if _, member := valueDocs[v]; !member {
			return nil, fmt.Errorf("%w: field %q: value %q", ErrOrphanDocumentation, name, v)
		}
		valueDocs[v] = doc
	}

	return &FieldSpec{
		name:      name,
		title:     title,
		ftype:     TypeString,
		minLength: minLength,
		allowed:   slices.Clone(values),
		docs:      valueDocs,
	}, nil
}

// Name returns the field identifier, unique within a record schema.
func (f *FieldSpec) Name() string { return f.name }

// Title returns the short human-readable label.
func (f *FieldSpec) Title() string { return f.title }

// Description returns the free-form prose attached to the field definition.
// It is advisory only and never machine-enforced.
func (f *FieldSpec) Description() string { return f.description }

// Type returns the primitive the field accepts.
func (f *FieldSpec) Type() FieldType { return f.ftype }

// MinLength returns the minimum accepted string length.
func (f *FieldSpec) MinLength() int { return f.minLength }

// IsEnum reports whether the field is restricted to a controlled vocabulary.
func (f *FieldSpec) IsEnum() bool { return len(f.allowed) > 0 }

// AllowedValues returns a copy of the controlled vocabulary in declared
// order, or nil for free-form fields.
func (f *FieldSpec) AllowedValues() []string { return slices.Clone(f.allowed) }

// Extra returns a copy of the unrecognized keys carried by the field's
// declarative source. They are preserved for forward compatibility, never
// interpreted.
func (f *FieldSpec) Extra() map[string]any { return maps.Clone(f.extra) }

// IsAllowed reports whether value is a member of the controlled vocabulary.
// Matching is exact and case-sensitive; declaration order is irrelevant
// here. Free-form fields accept every value.
func (f *FieldSpec) IsAllowed(value string) bool {
	if !f.IsEnum() {
		return true
	}
	_, ok := f.docs[value]
	return ok
}

// Describe returns the documentation prose for an allowed value. The second
// return is false when the value is not a vocabulary member. Every member
// has an entry, though the prose may be empty.
func (f *FieldSpec) Describe(value string) (string, bool) {
	doc, ok := f.docs[value]
	return doc, ok
}
