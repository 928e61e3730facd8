// Package record validates metadata records against an ordered set of field
// specs and reports every violation found in a single pass.
//
// The central usability property of a metadata-intake validator is
// exhaustive reporting: all applicable checks run for every field, nothing
// short-circuits, so a submitter sees every problem at once. Checks run in
// schema order, and within a field in the fixed order missing, type,
// minimum length, enum. An empty string in an enum field therefore reports
// both a length violation and a vocabulary violation, in that order.
//
// Invalid input is an expected, first-class outcome: Validate returns a
// Result carrying the violations as data and never fails. The only errors
// this package produces are construction errors for inconsistent schemas,
// which fail fast before any record can be validated.
//
// # Usage
//
//	validator, err := record.NewValidator([]*schema.FieldSpec{schema.MaterialField()})
//	if err != nil {
//	    // schema is inconsistent, nothing to validate with
//	}
//
//	res := validator.Validate(map[string]any{"material": "erratum"})
//	if !res.OK {
//	    for _, v := range res.Violations {
//	        // v.Field, v.Kind, v.Message
//	    }
//	}
//
// Undeclared record fields are ignored by default since metadata from
// heterogeneous sources commonly carries extension fields; the Strict option
// turns them into violations. OptionsFromEnv wires the same policy through
// RECORDKIT_* environment variables.
//
// Validators are immutable after construction and safe for concurrent use;
// validating the same record twice yields identical results.
package record
