package design

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStylePresets(t *testing.T) {
	presets := DefaultStylePresets()

	for _, key := range []string{"brutalist", "editorial", "neomorphism", "artisan"} {
		preset, ok := presets[key]
		require.True(t, ok, "missing preset %q", key)
		assert.NotEmpty(t, preset.Label)
		assert.NotEmpty(t, preset.Palette)
		assert.Len(t, preset.Fonts, 2)
		assert.NotEmpty(t, preset.ImagePrompt)
	}
}

func TestLoadStylePresets(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		presets, err := LoadStylePresets("")
		require.NoError(t, err)
		assert.Contains(t, presets, "brutalist")
	})

	t.Run("missing file falls back to defaults with error", func(t *testing.T) {
		presets, err := LoadStylePresets(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
		assert.Contains(t, presets, "editorial")
	})

	t.Run("valid file replaces catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "presets.json")
		payload := `{"midnight": {"label": "Midnight", "palette": ["#000011"], "fonts": ["Inter"], "image_prompt": "dark moody"}}`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		presets, err := LoadStylePresets(path)
		require.NoError(t, err)
		require.Len(t, presets, 1)
		assert.Equal(t, "Midnight", presets["midnight"].Label)
	})

	t.Run("empty catalog falls back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

		presets, err := LoadStylePresets(path)
		assert.Error(t, err)
		assert.Contains(t, presets, "artisan")
	})
}

func TestStyleContext(t *testing.T) {
	presets := DefaultStylePresets()

	t.Run("known preset", func(t *testing.T) {
		context, hint := presets.StyleContext("editorial")
		assert.Contains(t, context, "Editorial Luxe")
		assert.Contains(t, context, "Playfair Display")
		assert.Contains(t, context, "#0f172a / #f8fafc / #eab308")
		assert.Equal(t, "editorial magazine photography, soft lighting, high-end typography overlays", hint)
	})

	t.Run("unknown preset yields nothing", func(t *testing.T) {
		context, hint := presets.StyleContext("vaporwave")
		assert.Empty(t, context)
		assert.Empty(t, hint)
	})

	t.Run("missing label falls back to capitalized key", func(t *testing.T) {
		catalog := PresetCatalog{"minimal": {Palette: []string{"#ffffff"}}}
		context, _ := catalog.StyleContext("minimal")
		assert.Contains(t, context, "Style Name: Minimal")
	})
}
