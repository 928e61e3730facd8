// Package recordkit is a kit of small, independent packages for validating
// scholarly metadata records against declarative controlled-vocabulary
// schemas.
//
// The kit favors explicitness and immutability: schemas are loaded once
// into typed, read-only values, validation is a pure function over them,
// and invalid input is returned as data rather than raised as an error.
//
// Packages:
//
//   - pkg/schema    – typed field specs, declarative YAML/JSON loading,
//     built-in controlled vocabularies, documentation rendering
//   - pkg/record    – record validation with exhaustive violation reporting
//   - pkg/builder   – author and reference record builders
//   - pkg/normalize – name, date and whitespace canonicalization
//   - pkg/config    – env-based configuration loading
//
// Basic usage:
//
//	validator, err := record.NewValidator([]*schema.FieldSpec{schema.MaterialField()})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := validator.Validate(map[string]any{"material": "erratum"})
//	fmt.Println(res.OK) // true
//
// The kit defines no network, storage, or CLI surface: a host ingestion
// pipeline wires schema loading and record sourcing around it.
package recordkit
