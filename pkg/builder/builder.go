package builder

import (
	"maps"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// RecordBuilder assembles a metadata record as a plain map, suitable for
// validation by the record package. List fields are created on demand and
// empty elements are silently dropped, so callers can forward optional
// values without guarding every call.
type RecordBuilder struct {
	obj map[string]any
}

// NewRecordBuilder returns a builder over an empty record.
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{obj: make(map[string]any)}
}

// appendTo appends element to the named list field, creating the field if it
// does not exist yet. Empty elements are ignored.
func (b *RecordBuilder) appendTo(field string, element any) {
	if isEmpty(element) {
		return
	}
	list, _ := b.obj[field].([]any)
	b.obj[field] = append(list, element)
}

// ensureField sets the field only if it is not present yet.
func (b *RecordBuilder) ensureField(field string, value any) {
	if _, ok := b.obj[field]; !ok {
		b.obj[field] = value
	}
}

// Set overwrites a field unconditionally.
func (b *RecordBuilder) Set(field string, value any) {
	b.obj[field] = value
}

// SetAcquisitionSource records intake provenance: how and from where the
// record entered the system, with a unique submission number and an intake
// timestamp.
func (b *RecordBuilder) SetAcquisitionSource(method, source string) {
	b.obj["acquisition_source"] = map[string]any{
		"method":            method,
		"source":            source,
		"submission_number": uuid.NewString(),
		"datetime":          time.Now().UTC().Format(time.RFC3339),
	}
}

// Record returns the assembled record. The top-level map is copied so later
// builder calls do not mutate it under the caller.
func (b *RecordBuilder) Record() map[string]any {
	return maps.Clone(b.obj)
}

// isEmpty reports whether a value carries no information: nil, the empty
// string, or an empty slice or map.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map:
		return rv.Len() == 0
	default:
		return false
	}
}
