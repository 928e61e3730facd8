package schema

// Built-in controlled vocabularies of the scholarly metadata schema family
// this kit was written for. Each is constructed through the same consistency
// checks as user-supplied definitions; the definitions below are known good,
// so construction failures are programming errors.

func mustEnumField(name, title string, minLength int, values []string, docs map[string]string) *FieldSpec {
	spec, err := NewEnumField(name, title, minLength, values, docs)
	if err != nil {
		panic(err)
	}
	return spec
}

// MaterialField describes the relation of an ancillary document to the main
// publication it accompanies.
func MaterialField() *FieldSpec {
	return mustEnumField("material", "Material", 1,
		[]string{
			"addendum",
			"additional material",
			"data",
			"erratum",
			"editorial note",
			"preprint",
			"publication",
			"reprint",
			"software",
			"translation",
		},
		map[string]string{
			"addendum":            "Addendum to the main document, published separately.",
			"additional material": "Supplementary material accompanying the main document.",
			"data":                "Dataset associated with the main document.",
			"erratum":             "Correction of errors in the main document, published separately.",
			"editorial note":      "Editorial comment on the main document.",
			"preprint":            "Preprint version of the main document.",
			"publication":         "Published version of the main document.",
			"reprint":             "Reprint of the main document.",
			"software":            "Software associated with the main document.",
			"translation":         "Translation of the main document into another language.",
		})
}

// AuthorStatusField describes the career status of an author record.
func AuthorStatusField() *FieldSpec {
	return mustEnumField("status", "Status", 1,
		[]string{
			"active",
			"deceased",
			"departed",
			"retired",
		},
		map[string]string{
			"active":   "The author is an active researcher.",
			"deceased": "The author is deceased.",
			"departed": "The author has left the field.",
			"retired":  "The author has retired.",
		})
}

// DegreeTypeField describes the type of degree an advisor supervised.
func DegreeTypeField() *FieldSpec {
	return mustEnumField("degree_type", "Degree type", 1,
		[]string{
			"other",
			"diploma",
			"bachelor",
			"laurea",
			"master",
			"phd",
			"habilitation",
		},
		map[string]string{
			"other":        "Any degree not covered by the other values.",
			"diploma":      "Diploma degree.",
			"bachelor":     "Bachelor's degree.",
			"laurea":       "Italian laurea degree.",
			"master":       "Master's degree.",
			"phd":          "Doctorate.",
			"habilitation": "Habilitation.",
		})
}
