// Package schema models the declarative field definitions of a metadata
// schema: typed, immutable FieldSpec values describing one field's
// constraints each, with self-describing documentation for controlled
// vocabularies.
//
// A FieldSpec is built once — either programmatically via NewStringField /
// NewEnumField or from a declarative YAML/JSON document via ParseDocument —
// and is read-only afterwards, so it can be shared freely between
// goroutines. Construction is the only place errors can occur: a definition
// that is internally inconsistent (empty enum, duplicate values, values
// shorter than the declared minimum length, documentation for unknown
// values) fails fast with a sentinel error and no FieldSpec is produced.
//
// # Architecture
//
// Field kinds form an explicit closed set (FieldType); validation logic in
// the companion record package dispatches on it rather than on the dynamic
// shape of values. Controlled vocabularies keep two views of the same data:
// the declared value order, which is an observable contract used only for
// documentation rendering (DocString), and a set view used for membership
// tests (IsAllowed), which is order-independent.
//
// # Usage
//
//	raw := []byte(`
//	material:
//	  title: Material
//	  type: string
//	  minLength: 1
//	  enum: [erratum, addendum]
//	  valueDocs:
//	    erratum: Correction of errors in the main document.
//	    addendum: Addendum to the main document.
//	`)
//
//	specs, err := schema.ParseDocument(raw)
//	if err != nil {
//	    // the document is inconsistent; nothing was loaded
//	}
//
// # Error Handling
//
// All failures wrap one of the package sentinel errors
// (ErrInvalidEnumDefinition, ErrInconsistentMinLength,
// ErrDuplicateEnumValue, ErrOrphanDocumentation, ErrUnsupportedFieldType,
// ErrMalformedDocument) and can be tested with errors.Is.
//
// Unknown keys in a field definition are preserved on the FieldSpec (Extra)
// instead of being rejected, so schema documents can evolve without
// breaking older loaders.
package schema
