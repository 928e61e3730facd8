package record

import "errors"

// Validator construction errors. Like the schema package's sentinels these
// are load-time failures: a validator over an inconsistent schema is never
// built.
var (
	// ErrEmptySchema is returned when a validator is built without any field
	// specs.
	ErrEmptySchema = errors.New("record schema has no fields")

	// ErrNilFieldSpec is returned when a nil field spec is passed to the
	// validator constructor.
	ErrNilFieldSpec = errors.New("nil field spec")

	// ErrDuplicateField is returned when two field specs share a name.
	ErrDuplicateField = errors.New("duplicate field name in record schema")
)
