// Package builder assembles scholarly metadata records from loosely
// structured inputs, producing plain maps that the record package can
// validate.
//
// Two builders are provided. AuthorBuilder constructs author records: names
// are normalized into "Last, First" form, dates are canonicalized, and
// vocabulary-constrained fields (status, advisor degree type) reject values
// outside their controlled vocabulary at set time. ReferenceBuilder
// constructs reference objects from citation-extractor output: it splits
// author enumeration strings, parses "journal,volume,page" publication
// notes, and routes identifiers (arXiv eprints, DOIs, conference numbers)
// to the right field by shape, keeping anything unrecognized in misc or as
// a raw reference rather than losing it.
//
// Both builders share RecordBuilder's append semantics: list fields are
// created on demand and empty values are dropped, so optional inputs can be
// forwarded unguarded.
//
// # Usage
//
//	b := builder.NewAuthorBuilder()
//	b.SetName("john smith").AddEmail("j.smith@example.edu")
//	if err := b.SetStatus("active"); err != nil {
//	    // not a member of the status vocabulary
//	}
//	rec := b.Record()
//
// Builders are not safe for concurrent use; build a record on one goroutine
// and share the finished map read-only.
package builder
