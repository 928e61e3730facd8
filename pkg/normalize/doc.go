// Package normalize provides pure string canonicalization helpers for
// scholarly metadata: author names into "Last, First" form, dates into
// precision-preserving ISO layouts, and whitespace collapsing.
//
// All helpers are stateless and allocation-light; none of them is applied
// implicitly by the validator, which always echoes input unchanged.
// Normalization is an explicit step owned by record producers such as the
// builder package.
package normalize
