package schema

import "errors"

// Schema definition errors. All of them are load-time failures: a FieldSpec
// that would violate its own constraints is never constructed.
var (
	// ErrInvalidEnumDefinition is returned when an enum is declared empty,
	// the minimum length is negative, or the definition is otherwise
	// incomplete.
	ErrInvalidEnumDefinition = errors.New("invalid enum definition")

	// ErrInconsistentMinLength is returned when an allowed value is shorter
	// than the declared minimum length.
	ErrInconsistentMinLength = errors.New("enum value violates minimum length")

	// ErrDuplicateEnumValue is returned when the same value appears twice in
	// an enum declaration.
	ErrDuplicateEnumValue = errors.New("duplicate enum value")

	// ErrOrphanDocumentation is returned when documentation is supplied for a
	// value that is not part of the enum.
	ErrOrphanDocumentation = errors.New("documentation for unknown enum value")

	// ErrUnsupportedFieldType is returned when a schema document declares a
	// field type this package does not know how to validate.
	ErrUnsupportedFieldType = errors.New("unsupported field type")

	// ErrMalformedDocument is returned when a schema document cannot be
	// decoded into field definitions.
	ErrMalformedDocument = errors.New("malformed schema document")
)
