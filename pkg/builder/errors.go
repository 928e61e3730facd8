package builder

import "errors"

var (
	// ErrNotInVocabulary is returned when a builder setter receives a value
	// outside the field's controlled vocabulary.
	ErrNotInVocabulary = errors.New("value outside controlled vocabulary")
)
