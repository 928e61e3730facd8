package builder

import (
	"fmt"

	"github.com/dmitrymomot/recordkit/pkg/normalize"
	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// AuthorBuilder assembles an author record. Setters that accept free-form
// text are fluent; setters constrained by a controlled vocabulary return an
// error when the value is not a member, so invalid vocabulary terms never
// reach the record.
type AuthorBuilder struct {
	*RecordBuilder

	status     *schema.FieldSpec
	degreeType *schema.FieldSpec
}

// Position describes an author's association with an institution.
type Position struct {
	Institution string
	StartDate   string
	EndDate     string
	Rank        string
	Record      string
	Curated     bool
	Current     bool
}

// Project describes an author's participation in an experiment or project.
type Project struct {
	Name      string
	StartDate string
	EndDate   string
	Record    string
	Curated   bool
	Current   bool
}

// NewAuthorBuilder returns a builder over an empty author record.
func NewAuthorBuilder() *AuthorBuilder {
	return &AuthorBuilder{
		RecordBuilder: NewRecordBuilder(),
		status:        schema.AuthorStatusField(),
		degreeType:    schema.DegreeTypeField(),
	}
}

// nameField merges a key into the record's single name object.
func (b *AuthorBuilder) nameField(key string, value any) {
	name, _ := b.obj["name"].(map[string]any)
	if name == nil {
		name = make(map[string]any)
		b.obj["name"] = name
	}
	name[key] = value
}

// SetName sets the author's name, normalized to "Last, First" form. The
// value should carry the family name, the given names, or both.
func (b *AuthorBuilder) SetName(value string) *AuthorBuilder {
	if value != "" {
		b.nameField("value", normalize.Name(value))
	}
	return b
}

// SetDisplayName sets the name preferred for display.
func (b *AuthorBuilder) SetDisplayName(name string) *AuthorBuilder {
	if name != "" {
		b.nameField("preferred_name", name)
	}
	return b
}

// AddNativeName adds a name in the author's native script.
func (b *AuthorBuilder) AddNativeName(name string) *AuthorBuilder {
	if name == "" {
		return b
	}
	nameObj, _ := b.obj["name"].(map[string]any)
	if nameObj == nil {
		nameObj = make(map[string]any)
		b.obj["name"] = nameObj
	}
	natives, _ := nameObj["native_names"].([]any)
	nameObj["native_names"] = append(natives, name)
	return b
}

// AddEmail adds a public email address.
func (b *AuthorBuilder) AddEmail(email string) *AuthorBuilder {
	b.appendTo("email_addresses", email)
	return b
}

// SetStatus sets the author's career status. The value must be a member of
// the status vocabulary (see schema.AuthorStatusField).
func (b *AuthorBuilder) SetStatus(status string) error {
	if !b.status.IsAllowed(status) {
		return fmt.Errorf("%w: status %q", ErrNotInVocabulary, status)
	}
	b.Set("status", status)
	return nil
}

// AddURL adds a personal website with an optional description.
func (b *AuthorBuilder) AddURL(value, description string) *AuthorBuilder {
	if value == "" {
		return b
	}
	entry := map[string]any{"value": value}
	if description != "" {
		entry["description"] = description
	}
	b.appendTo("urls", entry)
	return b
}

// AddBlog adds a personal website marked as a blog.
func (b *AuthorBuilder) AddBlog(url string) *AuthorBuilder {
	return b.AddURL(url, "blog")
}

// AddLinkedIn adds a LinkedIn identifier.
func (b *AuthorBuilder) AddLinkedIn(value string) *AuthorBuilder {
	if value != "" {
		b.appendTo("ids", map[string]any{"value": value, "schema": "LINKEDIN"})
	}
	return b
}

// AddTwitter adds a Twitter identifier.
func (b *AuthorBuilder) AddTwitter(value string) *AuthorBuilder {
	if value != "" {
		b.appendTo("ids", map[string]any{"value": value, "schema": "TWITTER"})
	}
	return b
}

// AddResearchField adds an arXiv category describing a field of research.
func (b *AuthorBuilder) AddResearchField(category string) *AuthorBuilder {
	b.appendTo("arxiv_categories", category)
	return b
}

// AddInstitution adds an institution the author works or worked at. Dates
// are canonicalized; an unparseable date rejects the whole entry.
func (b *AuthorBuilder) AddInstitution(p Position) error {
	entry := map[string]any{
		"institution":      p.Institution,
		"curated_relation": p.Curated,
		"current":          p.Current,
	}
	if err := setDates(entry, p.StartDate, p.EndDate); err != nil {
		return err
	}
	if p.Rank != "" {
		entry["rank"] = p.Rank
	}
	if p.Record != "" {
		entry["record"] = p.Record
	}
	b.appendTo("positions", entry)
	return nil
}

// AddProject adds an experiment or project the author participated in.
func (b *AuthorBuilder) AddProject(p Project) error {
	entry := map[string]any{
		"name":             p.Name,
		"curated_relation": p.Curated,
		"current":          p.Current,
	}
	if err := setDates(entry, p.StartDate, p.EndDate); err != nil {
		return err
	}
	if p.Record != "" {
		entry["record"] = p.Record
	}
	b.appendTo("project_membership", entry)
	return nil
}

// AddAdvisor adds an advisor with the degree they supervised. The degree
// type must be a member of the degree vocabulary (see
// schema.DegreeTypeField); an empty degree type is allowed.
func (b *AuthorBuilder) AddAdvisor(name, degreeType string, curated bool) error {
	if degreeType != "" && !b.degreeType.IsAllowed(degreeType) {
		return fmt.Errorf("%w: degree type %q", ErrNotInVocabulary, degreeType)
	}
	entry := map[string]any{
		"name":             normalize.Name(name),
		"curated_relation": curated,
	}
	if degreeType != "" {
		entry["degree_type"] = degreeType
	}
	b.appendTo("advisors", entry)
	return nil
}

// AddPrivateNote adds a private curation comment with its source.
func (b *AuthorBuilder) AddPrivateNote(note, source string) *AuthorBuilder {
	if note == "" {
		return b
	}
	entry := map[string]any{"value": note}
	if source != "" {
		entry["source"] = source
	}
	b.appendTo("_private_notes", entry)
	return b
}

func setDates(entry map[string]any, start, end string) error {
	if start != "" {
		d, err := normalize.Date(start)
		if err != nil {
			return fmt.Errorf("start date %q: %w", start, err)
		}
		entry["start_date"] = d
	}
	if end != "" {
		d, err := normalize.Date(end)
		if err != nil {
			return fmt.Errorf("end date %q: %w", end, err)
		}
		entry["end_date"] = d
	}
	return nil
}
