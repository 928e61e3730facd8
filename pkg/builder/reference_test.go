package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/builder"
)

func reference(t *testing.T, b *builder.ReferenceBuilder) map[string]any {
	t.Helper()
	ref, ok := b.Record()["reference"].(map[string]any)
	require.True(t, ok, "record should carry a reference object")
	return ref
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comma separated",
			input: "N. Cabibbo, G. Parisi",
			want:  []string{"Cabibbo, N.", "Parisi, G."},
		},
		{
			name:  "and separator",
			input: "J. Maldacena, E. Witten and A. Strominger",
			want:  []string{"Maldacena, J.", "Witten, E.", "Strominger, A."},
		},
		{
			name:  "ampersand separator",
			input: "R. Penrose & S. Hawking",
			want:  []string{"Penrose, R.", "Hawking, S."},
		},
		{
			name:  "et al is dropped",
			input: "G. Aad et al.",
			want:  []string{"Aad, G."},
		},
		{
			name:  "editors marker is dropped",
			input: "C. Itzykson, J.B. Zuber (eds.)",
			want:  []string{"Itzykson, C.", "Zuber, J.B."},
		},
		{
			name:  "initials after the family name attach to it",
			input: "Einstein, A. and B. Podolsky",
			want:  []string{"Einstein, A.", "Podolsky, B."},
		},
		{
			name:  "surrounding junk is stripped",
			input: "1. (M. Veltman)",
			want:  []string{"Veltman, M."},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, builder.SplitAuthors(tt.input))
		})
	}
}

func TestReferenceBuilder(t *testing.T) {
	t.Run("label, texkey and record link", func(t *testing.T) {
		b := builder.NewReferenceBuilder()
		b.SetLabel("17")
		b.SetTexkey("Maldacena:1997re")
		b.SetRecord("https://example.org/api/literature/451647")

		rec := b.Record()
		assert.Equal(t, "https://example.org/api/literature/451647", rec["record"])
		assert.Equal(t, false, rec["curated_relation"])

		ref := reference(t, b)
		assert.Equal(t, "17", ref["label"])
		assert.Equal(t, "Maldacena:1997re", ref["texkey"])

		b.Curate()
		assert.Equal(t, true, b.Record()["curated_relation"])
	})

	t.Run("titles", func(t *testing.T) {
		b := builder.NewReferenceBuilder()
		b.AddTitle("The Large N limit of superconformal field theories")
		b.AddParentTitle("Advances in Theoretical and Mathematical Physics")

		ref := reference(t, b)
		assert.Equal(t, map[string]any{"title": "The Large N limit of superconformal field theories"}, ref["title"])
		info := ref["publication_info"].(map[string]any)
		assert.Equal(t, "Advances in Theoretical and Mathematical Physics", info["parent_title"])
	})

	t.Run("authors with roles", func(t *testing.T) {
		b := builder.NewReferenceBuilder()
		b.AddAuthor("Maldacena, J.", "")
		b.AddAuthor("Polchinski, J.", "ed.")

		authors := reference(t, b)["authors"].([]any)
		require.Len(t, authors, 2)
		assert.Equal(t, map[string]any{"full_name": "Maldacena, J."}, authors[0])
		assert.Equal(t, map[string]any{"full_name": "Polchinski, J.", "role": "editor"}, authors[1])
	})

	t.Run("authors from an extracted string", func(t *testing.T) {
		b := builder.NewReferenceBuilder()
		b.AddAuthorsFromString("J. Maldacena and E. Witten")

		authors := reference(t, b)["authors"].([]any)
		require.Len(t, authors, 2)
		assert.Equal(t, map[string]any{"full_name": "Maldacena, J."}, authors[0])
	})

	t.Run("year bounds", func(t *testing.T) {
		b := builder.NewReferenceBuilder()
		b.SetYear("1997")
		info := reference(t, b)["publication_info"].(map[string]any)
		assert.Equal(t, 1997, info["year"])

		b2 := builder.NewReferenceBuilder()
		b2.SetYear("123")
		b2.SetYear("3000")
		b2.SetYear("not a year")
		assert.Empty(t, b2.Record())
	})

	t.Run("pubnote with a page range", func(t *testing.T) {
		b := builder.NewReferenceBuilder()
		b.SetPubnote("Phys.Rev.,D93,104524-104530")

		info := reference(t, b)["publication_info"].(map[string]any)
		assert.Equal(t, "Phys.Rev.", info["journal_title"])
		assert.Equal(t, "D93", info["journal_volume"])
		assert.Equal(t, "104524", info["page_start"])
		assert.Equal(t, "104530", info["page_end"])
	})

	t.Run("pubnote with a single page doubles as artid", func(t *testing.T) {
		b := builder.NewReferenceBuilder()
		b.SetPubnote("Adv.Theor.Math.Phys.,2,231")

		info := reference(t, b)["publication_info"].(map[string]any)
		assert.Equal(t, "231", info["page_start"])
		assert.Equal(t, "231", info["artid"])
	})

	t.Run("malformed pubnote is kept as a raw reference", func(t *testing.T) {
		b := builder.NewReferenceBuilder()
		b.SetPubnote("no commas here")

		rec := b.Record()
		assert.NotContains(t, rec, "reference")
		raws := rec["raw_refs"].([]any)
		require.Len(t, raws, 1)
		assert.Equal(t, "no commas here", raws[0].(map[string]any)["value"])
	})

	t.Run("report numbers route arXiv identifiers", func(t *testing.T) {
		b := builder.NewReferenceBuilder()
		b.AddReportNumber("arXiv:hep-th/9711200")
		assert.Equal(t, "hep-th/9711200", reference(t, b)["arxiv_eprint"])

		b2 := builder.NewReferenceBuilder()
		b2.AddReportNumber("CERN-TH-2017-001")
		assert.Equal(t, "CERN-TH-2017-001", reference(t, b2)["report_number"])
	})

	t.Run("uid routing", func(t *testing.T) {
		t.Run("post-2007 arXiv identifier", func(t *testing.T) {
			b := builder.NewReferenceBuilder()
			b.AddUID("1705.01122v2")
			assert.Equal(t, "1705.01122", reference(t, b)["arxiv_eprint"])
		})

		t.Run("doi", func(t *testing.T) {
			b := builder.NewReferenceBuilder()
			b.AddUID("10.1023/A:1026654312961")
			assert.Equal(t, []any{"10.1023/A:1026654312961"}, reference(t, b)["dois"])
		})

		t.Run("conference number", func(t *testing.T) {
			b := builder.NewReferenceBuilder()
			b.AddUID("C87-11-11")
			info := reference(t, b)["publication_info"].(map[string]any)
			assert.Equal(t, "C87-11-11", info["cnum"])
		})

		t.Run("unrecognized identifiers land in misc", func(t *testing.T) {
			b := builder.NewReferenceBuilder()
			b.AddUID("some-legacy-id-42")
			assert.Equal(t, []any{"some-legacy-id-42"}, reference(t, b)["misc"])
		})
	})

	t.Run("publisher and collaborations", func(t *testing.T) {
		b := builder.NewReferenceBuilder()
		b.SetPublisher("Springer")
		b.AddCollaboration("ATLAS")

		ref := reference(t, b)
		assert.Equal(t, map[string]any{"publisher": "Springer"}, ref["imprint"])
		assert.Equal(t, []any{"ATLAS"}, ref["collaborations"])
	})

	t.Run("raw references default to text format", func(t *testing.T) {
		b := builder.NewReferenceBuilder()
		b.AddRawReference("[17] J. Maldacena, hep-th/9711200", "refextract", "")

		raws := b.Record()["raw_refs"].([]any)
		require.Len(t, raws, 1)
		assert.Equal(t, map[string]any{
			"schema": "text",
			"source": "refextract",
			"value":  "[17] J. Maldacena, hep-th/9711200",
		}, raws[0])
	})
}
