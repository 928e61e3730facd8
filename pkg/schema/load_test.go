package schema_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/schema"
)

const materialDoc = `
material:
  title: Material
  description: >
    The relation of an ancillary document to the main publication.
  type: string
  minLength: 1
  enum:
    - addendum
    - erratum
    - preprint
  valueDocs:
    addendum: Addendum to the main document.
    erratum: Correction of errors in the main document.
    preprint: Preprint version of the main document.
`

func TestParseDocument(t *testing.T) {
	t.Run("loads an enum field", func(t *testing.T) {
		specs, err := schema.ParseDocument([]byte(materialDoc))
		require.NoError(t, err)
		require.Len(t, specs, 1)

		spec := specs[0]
		assert.Equal(t, "material", spec.Name())
		assert.Equal(t, "Material", spec.Title())
		assert.NotEmpty(t, spec.Description())
		assert.Equal(t, 1, spec.MinLength())
		assert.Equal(t, []string{"addendum", "erratum", "preprint"}, spec.AllowedValues())

		doc, ok := spec.Describe("erratum")
		assert.True(t, ok)
		assert.Equal(t, "Correction of errors in the main document.", doc)
	})

	t.Run("preserves document field order", func(t *testing.T) {
		raw := []byte(`
zeta:
  type: string
alpha:
  type: string
material:
  enum: [erratum]
`)
		specs, err := schema.ParseDocument(raw)
		require.NoError(t, err)
		require.Len(t, specs, 3)
		assert.Equal(t, "zeta", specs[0].Name())
		assert.Equal(t, "alpha", specs[1].Name())
		assert.Equal(t, "material", specs[2].Name())
	})

	t.Run("preserves unknown keys", func(t *testing.T) {
		raw := []byte(`
material:
  enum: [erratum]
  x-source: legacy-marc
  deprecated: false
`)
		specs, err := schema.ParseDocument(raw)
		require.NoError(t, err)

		extra := specs[0].Extra()
		assert.Equal(t, "legacy-marc", extra["x-source"])
		assert.Equal(t, false, extra["deprecated"])
		assert.NotContains(t, extra, "enum")
	})

	t.Run("accepts JSON documents", func(t *testing.T) {
		raw := []byte(`{"material": {"type": "string", "minLength": 1, "enum": ["erratum"]}}`)
		specs, err := schema.ParseDocument(raw)
		require.NoError(t, err)
		require.Len(t, specs, 1)
		assert.True(t, specs[0].IsAllowed("erratum"))
	})

	t.Run("rejects unsupported field types", func(t *testing.T) {
		raw := []byte("count:\n  type: integer\n")
		_, err := schema.ParseDocument(raw)
		assert.ErrorIs(t, err, schema.ErrUnsupportedFieldType)
	})

	t.Run("rejects non-mapping documents", func(t *testing.T) {
		_, err := schema.ParseDocument([]byte("- a\n- b\n"))
		assert.ErrorIs(t, err, schema.ErrMalformedDocument)
	})

	t.Run("rejects empty documents", func(t *testing.T) {
		_, err := schema.ParseDocument(nil)
		assert.ErrorIs(t, err, schema.ErrMalformedDocument)
	})

	t.Run("aborts the whole load on an inconsistent definition", func(t *testing.T) {
		raw := []byte(`
ok:
  enum: [erratum]
broken:
  minLength: 100
  enum: [erratum]
`)
		specs, err := schema.ParseDocument(raw)
		assert.ErrorIs(t, err, schema.ErrInconsistentMinLength)
		assert.Nil(t, specs)
	})

	t.Run("reports loaded fields to the logger", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_, err := schema.ParseDocument([]byte(materialDoc), schema.WithLogger(log))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "material")
	})
}

func TestParseField(t *testing.T) {
	t.Run("loads a single definition", func(t *testing.T) {
		raw := []byte(`
title: Material
minLength: 1
enum: [erratum, addendum]
`)
		spec, err := schema.ParseField("material", raw)
		require.NoError(t, err)
		assert.Equal(t, "material", spec.Name())
		assert.Equal(t, []string{"erratum", "addendum"}, spec.AllowedValues())
	})

	t.Run("rejects scalar definitions", func(t *testing.T) {
		_, err := schema.ParseField("material", []byte(`"just a string"`))
		assert.ErrorIs(t, err, schema.ErrMalformedDocument)
	})
}
