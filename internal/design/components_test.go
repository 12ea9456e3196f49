package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferProjectTags(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		template string
		want     []string
	}{
		{
			name: "saas brief",
			text: "Landing page for my SaaS analytics platform",
			want: []string{"saas"},
		},
		{
			name: "agency and portfolio",
			text: "Creative agency portfolio with photography work",
			want: []string{"agency", "portfolio"},
		},
		{
			name:     "template name contributes",
			text:     "A simple landing page",
			template: "bootcamp-education",
			want:     []string{"education"},
		},
		{
			name: "unmatched brief defaults to general",
			text: "something entirely unrelated",
			want: []string{"general"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := InferProjectTags(tt.text, tt.template)
			for _, want := range tt.want {
				assert.True(t, tags[want], "expected tag %q in %v", want, tags)
			}
			assert.Len(t, tags, len(tt.want))
		})
	}
}

func TestSelectVariants(t *testing.T) {
	lib := DefaultComponentLibrary()

	selections := lib.SelectVariants(map[string]bool{"saas": true})
	require.Contains(t, selections, "hero")
	assert.Equal(t, "hero_split_image", selections["hero"].Variant.ID)
	assert.Equal(t, "Hero Sections", selections["hero"].SectionLabel)

	// Tags with no match still get each section's first variant.
	selections = lib.SelectVariants(map[string]bool{"unheard-of": true})
	assert.Len(t, selections, len(lib))
}

func TestBuildBlueprint(t *testing.T) {
	lib := DefaultComponentLibrary()

	t.Run("renders every selected section", func(t *testing.T) {
		selections, blueprint := lib.BuildBlueprint("SaaS platform for accountants", "", nil)
		assert.Len(t, selections, len(lib))
		assert.Contains(t, blueprint, "COMPONENT BLUEPRINT:")
		assert.Contains(t, blueprint, "Hero Sections")
		assert.Contains(t, blueprint, "Three Tiers")
	})

	t.Run("exclusion preference removes a section", func(t *testing.T) {
		exclude := false
		selections, blueprint := lib.BuildBlueprint("SaaS platform", "", map[string]SectionPreference{
			"pricing": {Include: &exclude},
		})
		assert.NotContains(t, selections, "pricing")
		assert.NotContains(t, blueprint, "Pricing Tables")
	})

	t.Run("variant preference forces a variant", func(t *testing.T) {
		selections, _ := lib.BuildBlueprint("anything", "", map[string]SectionPreference{
			"timeline": {Variant: "timeline_vertical_cards"},
		})
		assert.Equal(t, "timeline_vertical_cards", selections["timeline"].Variant.ID)
	})

	t.Run("unknown section preference is ignored", func(t *testing.T) {
		selections, _ := lib.BuildBlueprint("anything", "", map[string]SectionPreference{
			"carousel": {Variant: "does_not_exist"},
		})
		assert.Len(t, selections, len(lib))
	})

	t.Run("blueprint text is deterministic", func(t *testing.T) {
		_, first := lib.BuildBlueprint("agency site", "", nil)
		for i := 0; i < 5; i++ {
			_, again := lib.BuildBlueprint("agency site", "", nil)
			require.Equal(t, first, again)
		}
	})

	t.Run("empty library yields empty blueprint", func(t *testing.T) {
		empty := ComponentLibrary{}
		selections, blueprint := empty.BuildBlueprint("anything", "", nil)
		assert.Empty(t, selections)
		assert.Empty(t, blueprint)
	})
}
