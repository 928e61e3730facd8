package record_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/builder"
	"github.com/dmitrymomot/recordkit/pkg/record"
	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// Exercises the full intake path: declarative schema document → validator →
// records assembled by the builder package.
func TestIntakePipeline(t *testing.T) {
	raw := []byte(`
status:
  title: Status
  type: string
  minLength: 1
  enum: [active, deceased, departed, retired]
  valueDocs:
    active: The author is an active researcher.
material:
  title: Material
  type: string
  minLength: 1
  enum: [addendum, erratum, preprint]
`)

	specs, err := schema.ParseDocument(raw)
	require.NoError(t, err)

	validator, err := record.NewValidator(specs)
	require.NoError(t, err)

	t.Run("accepts a built record", func(t *testing.T) {
		b := builder.NewAuthorBuilder()
		b.SetName("john smith")
		require.NoError(t, b.SetStatus("active"))

		rec := b.Record()
		rec["material"] = "erratum"

		res := validator.Validate(rec)
		assert.True(t, res.OK, res.Violations)
	})

	t.Run("collects all problems in one pass", func(t *testing.T) {
		res := validator.Validate(map[string]any{"material": ""})

		assert.False(t, res.OK)
		assert.Equal(t, []string{"status", "material"}, res.Violations.Fields())
		assert.Len(t, res.Violations.Get("material"), 2)
	})

	t.Run("is safe for concurrent validation", func(t *testing.T) {
		rec := map[string]any{"status": "active", "material": "preprint"}

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res := validator.Validate(rec)
				assert.True(t, res.OK)
			}()
		}
		wg.Wait()
	})
}
