package record

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// Result is the outcome of validating one record. OK is true iff Violations
// is empty. Normalized echoes the input record unchanged: no coercion is
// performed at this scope, richer normalization belongs to the builders.
type Result struct {
	OK         bool
	Violations Violations
	Normalized map[string]any
}

// Validator checks records against an ordered set of field specs. It holds
// no mutable state across calls; once built it is safe for concurrent use.
type Validator struct {
	specs  []*schema.FieldSpec
	strict bool
}

// Option configures validator construction.
type Option func(*Validator)

// Strict makes undeclared record fields a violation. The default is
// permissive: metadata records from heterogeneous sources commonly carry
// extension fields, so unknown fields are ignored unless strictness is asked
// for.
func Strict(enabled bool) Option {
	return func(v *Validator) { v.strict = enabled }
}

// NewValidator builds a validator over the given field specs. Field order is
// preserved: violations are reported in schema order. Construction fails
// fast on an inconsistent schema (no specs, nil specs, duplicate names); a
// validator over a malformed schema must never exist.
func NewValidator(specs []*schema.FieldSpec, opts ...Option) (*Validator, error) {
	if len(specs) == 0 {
		return nil, ErrEmptySchema
	}

	names := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if spec == nil {
			return nil, ErrNilFieldSpec
		}
		if _, dup := names[spec.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, spec.Name())
		}
		names[spec.Name()] = struct{}{}
	}

	v := &Validator{specs: slices.Clone(specs)}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Validate checks a record against the schema and reports every violation
// found. All applicable checks run for every field — validation never stops
// at the first failure, so the caller sees all problems in one pass. Within
// a field, checks run in the fixed order missing, type, minimum length,
// enum; an empty string that is also outside the vocabulary reports both.
//
// Invalid input is an expected outcome, returned as data: Validate never
// fails.
func (v *Validator) Validate(rec map[string]any) Result {
	var violations Violations

	for _, spec := range v.specs {
		raw, present := rec[spec.Name()]
		if !present {
			violations = append(violations, missingField(spec))
			continue
		}

		s, isString := raw.(string)
		if !isString {
			violations = append(violations, typeMismatch(spec, raw))
			continue
		}

		if len(s) < spec.MinLength() {
			violations = append(violations, tooShort(spec, s))
		}
		if spec.IsEnum() && !spec.IsAllowed(s) {
			violations = append(violations, notInEnum(spec, s))
		}
	}

	if v.strict {
		declared := make(map[string]struct{}, len(v.specs))
		for _, spec := range v.specs {
			declared[spec.Name()] = struct{}{}
		}
		for _, name := range slices.Sorted(maps.Keys(rec)) {
			if _, ok := declared[name]; !ok {
				violations = append(violations, unknownField(name, rec[name]))
			}
		}
	}

	return Result{
		OK:         violations.IsEmpty(),
		Violations: violations,
		Normalized: maps.Clone(rec),
	}
}

func missingField(spec *schema.FieldSpec) Violation {
	return Violation{
		Field:          spec.Name(),
		Kind:           KindMissingField,
		Message:        "field is required",
		TranslationKey: "validation.required",
		TranslationValues: map[string]any{
			"field": spec.Name(),
		},
	}
}

func typeMismatch(spec *schema.FieldSpec, value any) Violation {
	return Violation{
		Field:          spec.Name(),
		Kind:           KindTypeMismatch,
		Message:        fmt.Sprintf("must be a %s, got %T", spec.Type(), value),
		Value:          value,
		TranslationKey: "validation.type_mismatch",
		TranslationValues: map[string]any{
			"field":    spec.Name(),
			"expected": string(spec.Type()),
		},
	}
}

func tooShort(spec *schema.FieldSpec, value string) Violation {
	return Violation{
		Field:          spec.Name(),
		Kind:           KindTooShort,
		Message:        fmt.Sprintf("must be at least %d characters long", spec.MinLength()),
		Value:          value,
		TranslationKey: "validation.min_length",
		TranslationValues: map[string]any{
			"field": spec.Name(),
			"min":   spec.MinLength(),
		},
	}
}

func notInEnum(spec *schema.FieldSpec, value string) Violation {
	// Sorted for display so error messages are stable regardless of the
	// vocabulary's declared order.
	allowed := spec.AllowedValues()
	slices.Sort(allowed)

	return Violation{
		Field:          spec.Name(),
		Kind:           KindNotInEnum,
		Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		Value:          value,
		Allowed:        allowed,
		TranslationKey: "validation.in_list",
		TranslationValues: map[string]any{
			"field":          spec.Name(),
			"allowed_values": allowed,
		},
	}
}

func unknownField(name string, value any) Violation {
	return Violation{
		Field:          name,
		Kind:           KindUnknownField,
		Message:        "field is not declared in the schema",
		Value:          value,
		TranslationKey: "validation.unknown_field",
		TranslationValues: map[string]any{
			"field": name,
		},
	}
}
