package record

import (
	"fmt"
	"strings"
)

// Kind classifies a single validation violation.
type Kind string

const (
	// KindMissingField reports a declared field absent from the record.
	KindMissingField Kind = "missing_field"
	// KindTypeMismatch reports a value of the wrong primitive type.
	KindTypeMismatch Kind = "type_mismatch"
	// KindTooShort reports a string shorter than the field's minimum length.
	KindTooShort Kind = "too_short"
	// KindNotInEnum reports a value outside the field's controlled vocabulary.
	KindNotInEnum Kind = "not_in_enum"
	// KindUnknownField reports a field not declared in the schema. Only
	// emitted in strict mode.
	KindUnknownField Kind = "unknown_field"
)

// Violation is a single, non-fatal reason a record failed validation for one
// field. It carries enough context to render a precise user-facing message,
// including translation metadata.
type Violation struct {
	Field             string
	Kind              Kind
	Message           string
	Value             any
	Allowed           []string
	TranslationKey    string
	TranslationValues map[string]any
}

// Violations is an ordered collection of violations. It implements the error
// interface so a whole validation outcome can be bubbled up as one error
// value, but invalid input is ordinarily consumed as data via Result.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any violation was recorded for the field.
func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages of all violations recorded for the field.
func (vs Violations) Get(field string) []string {
	var messages []string
	for _, v := range vs {
		if v.Field == field {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// GetViolations returns all violations recorded for the field.
func (vs Violations) GetViolations(field string) []Violation {
	var out []Violation
	for _, v := range vs {
		if v.Field == field {
			out = append(out, v)
		}
	}
	return out
}

// Fields returns the distinct field names with violations, in first-seen
// order.
func (vs Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

// IsEmpty reports whether no violations were recorded.
func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}
