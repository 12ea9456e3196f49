package design

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// StylePreset is a bundle of palette, typography and mood descriptors that
// biases the visual output of generated pages.
type StylePreset struct {
	Label        string   `json:"label"`
	Palette      []string `json:"palette"`
	Fonts        []string `json:"fonts"`
	Mood         []string `json:"mood"`
	UIAccents    string   `json:"ui_accents"`
	Instructions string   `json:"instructions"`
	ImagePrompt  string   `json:"image_prompt"`
}

// PresetCatalog maps preset keys to their definitions.
type PresetCatalog map[string]StylePreset

// DefaultStylePresets returns the compiled-in preset catalog used when no
// external JSON catalog is configured.
func DefaultStylePresets() PresetCatalog {
	return PresetCatalog{
		"brutalist": {
			Label:        "Brutalist Bold",
			Palette:      []string{"#000000", "#f4f4f4", "#ff0054"},
			Fonts:        []string{"Space Grotesk", "Inter"},
			Mood:         []string{"bold", "architectural", "minimal"},
			UIAccents:    "thick borders, stark boxes, asymmetric layout",
			Instructions: "Use high-contrast surfaces, unapologetically large typography, and minimal gradients.",
			ImagePrompt:  "brutalist aesthetic, bold high-contrast colors, punchy geometric composition",
		},
		"editorial": {
			Label:        "Editorial Luxe",
			Palette:      []string{"#0f172a", "#f8fafc", "#eab308"},
			Fonts:        []string{"Playfair Display", "Source Sans Pro"},
			Mood:         []string{"refined", "magazine-like", "balanced"},
			UIAccents:    "generous whitespace, split layouts, elegant rules and captions",
			Instructions: "Emphasize large serif headlines, supporting sans-serif body copy, and balanced columns.",
			ImagePrompt:  "editorial magazine photography, soft lighting, high-end typography overlays",
		},
		"neomorphism": {
			Label:        "Neo-morphism Soft Glow",
			Palette:      []string{"#ecf0f3", "#cfd8dc", "#5c6ac4"},
			Fonts:        []string{"Poppins", "Nunito"},
			Mood:         []string{"soft", "tactile", "futuristic"},
			UIAccents:    "subtle shadows, pill buttons, frosted cards, glowing highlights",
			Instructions: "Use layered cards with soft drop shadows, rounded corners, and gentle gradients.",
			ImagePrompt:  "soft lit 3D renders, neumorphic interface visuals, gentle glow",
		},
		"artisan": {
			Label:        "Warm Artisan",
			Palette:      []string{"#2c1810", "#f7ede2", "#f28482"},
			Fonts:        []string{"Cormorant Garamond", "Work Sans"},
			Mood:         []string{"warm", "craft-focused", "story-driven"},
			UIAccents:    "textured backgrounds, hand-drawn dividers, layered cards",
			Instructions: "Incorporate organic shapes, textured backgrounds, and storytelling callouts.",
			ImagePrompt:  "artisan lifestyle photography, warm film tones, handcrafted details",
		},
	}
}

// LoadStylePresets reads a preset catalog from a JSON file. An empty path or
// any load failure falls back to the compiled-in defaults so the frontend and
// backend always share a catalog.
func LoadStylePresets(path string) (PresetCatalog, error) {
	if path == "" {
		return DefaultStylePresets(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultStylePresets(), fmt.Errorf("reading style presets: %w", err)
	}
	var catalog PresetCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return DefaultStylePresets(), fmt.Errorf("parsing style presets: %w", err)
	}
	if len(catalog) == 0 {
		return DefaultStylePresets(), fmt.Errorf("style preset file %s is empty", path)
	}
	return catalog, nil
}

// StyleContext renders a preset into prompt guidance text plus the preset's
// image prompt hint. An unknown key yields empty strings.
func (c PresetCatalog) StyleContext(key string) (string, string) {
	preset, ok := c[key]
	if !ok {
		return "", ""
	}

	headingFont := "sans-serif"
	bodyFont := "sans-serif"
	if len(preset.Fonts) > 0 {
		headingFont = preset.Fonts[0]
	}
	if len(preset.Fonts) > 1 {
		bodyFont = preset.Fonts[1]
	}

	label := preset.Label
	if label == "" {
		label = strings.ToUpper(key[:1]) + key[1:]
	}

	context := fmt.Sprintf(`
DESIGN STYLE GUIDANCE:
- Style Name: %s
- Palette: %s
- Typography: Heading – %s, Body – %s
- Mood: %s
- UI Accents: %s
- Additional Instructions: %s
Ensure every section, color choice, component spacing, and interaction embodies this style consistently.
`,
		label,
		strings.Join(preset.Palette, " / "),
		headingFont,
		bodyFont,
		strings.Join(preset.Mood, ", "),
		preset.UIAccents,
		preset.Instructions,
	)
	return context, preset.ImagePrompt
}
