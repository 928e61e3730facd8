package builder

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Separators in author enumerations: "and", "&", commas, "et al.",
	// "(eds.)".
	reSplitAuthors = regexp.MustCompile(`(?i),?\s+and\s|,?\s*&|,|et al\.?|\(?eds?\.\)?`)
	// A stream of initials (A. B C D. -E F).
	reInitialsOnly = regexp.MustCompile(`^\s*-?[A-Z]((\.|\s)\s*-?[A-Z])*\.?\s*$`)
	reParens       = regexp.MustCompile(`[()]`)
	reLeadingJunk  = regexp.MustCompile(`^[\W\d]+`)
	reTrailingJunk = regexp.MustCompile(`[^.\w]+$`)

	reValidCNUM    = regexp.MustCompile(`^C\d{2}-\d{2}-\d{2}(\.\d+)?`)
	reValidPubnote = regexp.MustCompile(`.*,.*,.*(,.*)?`)
	reDOI          = regexp.MustCompile(`^(doi:)?10\.\d{4,9}/\S+$`)

	reArxivPre2007  = regexp.MustCompile(`^(?i:arxiv:)?([a-z-]+(?:\.[A-Z]{2})?)/(\d{7})(v\d+)?$`)
	reArxivPost2007 = regexp.MustCompile(`^(?i:arxiv:)?(\d{4})\.(\d{4,5})(v\d+)?$`)
)

// ReferenceBuilder assembles a reference object from the loosely structured
// properties a citation extractor or legacy conversion produces. Values land
// in the right subfield of the nested "reference" object; identifiers are
// recognized and routed by shape.
type ReferenceBuilder struct {
	*RecordBuilder
}

// NewReferenceBuilder returns a builder over an empty reference.
func NewReferenceBuilder() *ReferenceBuilder {
	return &ReferenceBuilder{RecordBuilder: NewRecordBuilder()}
}

// reference returns the nested reference object, creating it on demand.
func (b *ReferenceBuilder) reference() map[string]any {
	ref, _ := b.obj["reference"].(map[string]any)
	if ref == nil {
		ref = make(map[string]any)
		b.obj["reference"] = ref
	}
	return ref
}

// ensureReferenceField sets a reference subfield only if absent.
func (b *ReferenceBuilder) ensureReferenceField(field string, value any) {
	ref := b.reference()
	if _, ok := ref[field]; !ok {
		ref[field] = value
	}
}

func (b *ReferenceBuilder) publicationInfo() map[string]any {
	b.ensureReferenceField("publication_info", map[string]any{})
	return b.reference()["publication_info"].(map[string]any)
}

// SetLabel sets the label the citing document used for this reference.
func (b *ReferenceBuilder) SetLabel(label string) {
	b.ensureReferenceField("label", label)
}

// SetRecord links the reference to a matched record.
func (b *ReferenceBuilder) SetRecord(record string) {
	b.obj["record"] = record
	b.ensureField("curated_relation", false)
}

// Curate marks the reference-to-record link as human verified.
func (b *ReferenceBuilder) Curate() {
	b.obj["curated_relation"] = true
}

// SetTexkey sets the TeX key of the reference.
func (b *ReferenceBuilder) SetTexkey(texkey string) {
	b.ensureReferenceField("texkey", texkey)
}

// AddTitle sets the title of the referenced document.
func (b *ReferenceBuilder) AddTitle(title string) {
	b.reference()["title"] = map[string]any{"title": title}
}

// AddParentTitle sets the title of the containing work, e.g. the book a
// chapter appeared in.
func (b *ReferenceBuilder) AddParentTitle(title string) {
	b.publicationInfo()["parent_title"] = title
}

// AddMisc appends text that could not be parsed into a structured field.
func (b *ReferenceBuilder) AddMisc(misc string) {
	b.ensureReferenceField("misc", []any{})
	ref := b.reference()
	ref["misc"] = append(ref["misc"].([]any), misc)
}

// AddRawReference keeps the reference as originally extracted, with its
// source and format.
func (b *ReferenceBuilder) AddRawReference(raw, source, format string) {
	if format == "" {
		format = "text"
	}
	b.appendTo("raw_refs", map[string]any{
		"schema": format,
		"source": source,
		"value":  raw,
	})
}

// SetYear sets the publication year. Values that are not plausible years
// are dropped silently, matching the forgiving intake behavior expected by
// reference extractors.
func (b *ReferenceBuilder) SetYear(year string) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return
	}
	if y < 1000 || y > 2050 {
		return
	}
	b.publicationInfo()["year"] = y
}

// AddURL adds a URL pointing at the referenced document.
func (b *ReferenceBuilder) AddURL(url string) {
	b.ensureReferenceField("urls", []any{})
	ref := b.reference()
	ref["urls"] = append(ref["urls"].([]any), map[string]any{"value": url})
}

// AddAuthor adds a reference author. A role of "ed." is recorded as
// "editor".
func (b *ReferenceBuilder) AddAuthor(fullName, role string) {
	b.ensureReferenceField("authors", []any{})
	entry := map[string]any{"full_name": fullName}
	if role != "" {
		if role == "ed." {
			role = "editor"
		}
		entry["role"] = role
	}
	ref := b.reference()
	ref["authors"] = append(ref["authors"].([]any), entry)
}

// AddAuthorsFromString parses an extracted author enumeration string and
// adds each recognized author.
func (b *ReferenceBuilder) AddAuthorsFromString(authors string) {
	for _, author := range SplitAuthors(authors) {
		b.AddAuthor(author, "")
	}
}

// SetPubnote parses a "journal,volume,page" publication note into structured
// publication info. Strings not matching that shape are preserved as raw
// references instead of being dropped.
func (b *ReferenceBuilder) SetPubnote(pubnote string) {
	if !reValidPubnote.MatchString(pubnote) {
		b.AddRawReference(pubnote, "", "")
		return
	}

	info := b.publicationInfo()
	parts := strings.SplitN(pubnote, ",", 3)
	if title := strings.TrimSpace(parts[0]); title != "" {
		info["journal_title"] = title
	}
	if volume := strings.TrimSpace(parts[1]); volume != "" {
		info["journal_volume"] = volume
	}

	pages := strings.TrimSpace(parts[2])
	if idx := strings.Index(pages, ","); idx >= 0 {
		if artid := strings.TrimSpace(pages[idx+1:]); artid != "" {
			info["artid"] = artid
		}
		pages = strings.TrimSpace(pages[:idx])
	}
	if pages == "" {
		return
	}
	if start, end, isRange := strings.Cut(pages, "-"); isRange {
		info["page_start"] = start
		info["page_end"] = end
	} else {
		// A single value may be either a page or an article id; record
		// both readings.
		info["page_start"] = pages
		if _, ok := info["artid"]; !ok {
			info["artid"] = pages
		}
	}
}

// SetPublisher sets the publisher of the referenced document.
func (b *ReferenceBuilder) SetPublisher(publisher string) {
	b.ensureReferenceField("imprint", map[string]any{})
	b.reference()["imprint"].(map[string]any)["publisher"] = publisher
}

// AddReportNumber records a report number, routing arXiv identifiers to the
// eprint field.
func (b *ReferenceBuilder) AddReportNumber(repno string) {
	if repno == "" {
		return
	}
	if eprint, ok := normalizeArxiv(repno); ok {
		b.ensureReferenceField("arxiv_eprint", eprint)
		return
	}
	b.reference()["report_number"] = repno
}

// AddUID routes a unique identifier to the field matching its shape: arXiv
// eprints, DOIs, conference numbers. Anything unrecognized is kept in misc
// rather than lost.
func (b *ReferenceBuilder) AddUID(uid string) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return
	}
	switch {
	case isArxiv(uid):
		eprint, _ := normalizeArxiv(uid)
		b.ensureReferenceField("arxiv_eprint", eprint)
	case reDOI.MatchString(uid):
		b.ensureReferenceField("dois", []any{})
		ref := b.reference()
		ref["dois"] = append(ref["dois"].([]any), strings.TrimPrefix(uid, "doi:"))
	case reValidCNUM.MatchString(uid):
		b.publicationInfo()["cnum"] = uid
	default:
		b.AddMisc(uid)
	}
}

// AddCollaboration adds a collaboration the referenced document is
// attributed to.
func (b *ReferenceBuilder) AddCollaboration(collaboration string) {
	b.ensureReferenceField("collaborations", []any{})
	ref := b.reference()
	ref["collaborations"] = append(ref["collaborations"].([]any), collaboration)
}

// SplitAuthors extracts individual author names out of an extracted author
// enumeration string such as "J. Maldacena, E. Witten and A. Strominger".
// Streams of bare initials are attached to the preceding family name, and
// each result is reordered into "Last, First" form.
func SplitAuthors(authors string) []string {
	var (
		collected []string
		current   string
	)
	for _, token := range reSplitAuthors.Split(authors, -1) {
		author := strings.TrimSpace(token)
		if author == "" {
			continue
		}

		author = reParens.ReplaceAllString(author, "")
		// Names start with characters and end with characters or a dot.
		author = reLeadingJunk.ReplaceAllString(author, "")
		author = reTrailingJunk.ReplaceAllString(author, "")

		if reInitialsOnly.MatchString(author) {
			current += ", " + strings.ReplaceAll(strings.TrimSpace(author), ". ", ".")
			continue
		}
		if current != "" {
			collected = append(collected, current)
		}
		current = author
	}
	if current != "" {
		collected = append(collected, current)
	}

	// Leftovers the splitting regexes let through: stray "ed" tokens,
	// fragments like ", E." from legacy references, lone initials.
	var res []string
	for _, author := range collected {
		if author == "ed" || strings.HasPrefix(author, ",") || len(author) == 1 {
			continue
		}
		res = append(res, lastNameFirst(author))
	}
	return res
}

// lastNameFirst moves the final whitespace-separated token in front:
// "J.M. Smith" becomes "Smith, J.M.". Names already in "Last, First" form
// (produced when initials follow the family name in the input) are kept.
func lastNameFirst(author string) string {
	if strings.Contains(author, ",") {
		return author
	}
	words := strings.Split(author, " ")
	res := words[len(words)-1] + ", "
	for _, word := range words[:len(words)-1] {
		res += word
	}
	return res
}

// isArxiv reports whether the first whitespace-separated token of the value
// is an arXiv identifier. References sometimes carry extra information after
// the identifier, separated by a space.
func isArxiv(value string) bool {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return false
	}
	return reArxivPre2007.MatchString(fields[0]) || reArxivPost2007.MatchString(fields[0])
}

// normalizeArxiv returns a canonical arXiv identifier without prefix or
// version, or false when the value is not an arXiv identifier.
func normalizeArxiv(value string) (string, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return "", false
	}
	token := fields[0]

	if m := reArxivPre2007.FindStringSubmatch(token); m != nil {
		return strings.ToLower(m[1]) + "/" + m[2], true
	}
	if m := reArxivPost2007.FindStringSubmatch(token); m != nil {
		return m[1] + "." + m[2], true
	}
	return "", false
}
