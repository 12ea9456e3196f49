package design

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ComponentVariant is one curated layout option for a page section.
type ComponentVariant struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Layout        string   `json:"layout"`
	ContentFocus  []string `json:"content_focus"`
	VisualNotes   string   `json:"visual_notes"`
	BestFor       []string `json:"best_for"`
	CSSPrimitives []string `json:"css_primitives"`
}

// ComponentSection groups the variants available for one section type.
type ComponentSection struct {
	Label       string             `json:"label"`
	Description string             `json:"description"`
	Variants    []ComponentVariant `json:"variants"`
}

// ComponentLibrary maps section keys (hero, pricing, ...) to their sections.
type ComponentLibrary map[string]ComponentSection

// SectionPreference carries a user's override for one section: exclude it
// entirely, or force a specific variant. A nil Include means "keep it".
type SectionPreference struct {
	Include *bool  `json:"include,omitempty"`
	Variant string `json:"variant,omitempty"`
}

// ComponentSelection is the chosen variant for a section, ready for the
// blueprint and the API response.
type ComponentSelection struct {
	SectionLabel       string           `json:"section_label"`
	SectionDescription string           `json:"section_description"`
	Variant            ComponentVariant `json:"variant"`
}

// DefaultComponentLibrary returns the compiled-in component catalog.
func DefaultComponentLibrary() ComponentLibrary {
	return ComponentLibrary{
		"hero": {
			Label:       "Hero Sections",
			Description: "Above-the-fold intros that mix bold headlines, supporting copy, CTAs, and imagery.",
			Variants: []ComponentVariant{
				{
					ID:            "hero_split_image",
					Name:          "Split Layout",
					Layout:        "Two-column grid with text on the left and layered imagery on the right.",
					ContentFocus:  []string{"Headline", "Value bullets", "Primary CTA"},
					VisualNotes:   "Use gradient accent behind the image and floating stat cards.",
					BestFor:       []string{"saas", "agency", "product", "general"},
					CSSPrimitives: []string{"grid", "gradient-background", "rounded-3xl", "shadow-2xl"},
				},
			},
		},
		"testimonials": {
			Label:       "Testimonials",
			Description: "Social proof layouts to build trust.",
			Variants: []ComponentVariant{
				{
					ID:            "testimonials_cards",
					Name:          "Card Grid",
					Layout:        "Responsive grid of testimonial cards with star ratings.",
					ContentFocus:  []string{"Quote", "Star rating", "Avatar"},
					VisualNotes:   "Alternate background tints and include quotation marks.",
					BestFor:       []string{"saas", "agency", "services", "general"},
					CSSPrimitives: []string{"grid", "rounded-2xl", "shadow-md", "accent-border"},
				},
			},
		},
		"pricing": {
			Label:       "Pricing Tables",
			Description: "Package comparisons with highlighted plan.",
			Variants: []ComponentVariant{
				{
					ID:            "pricing_three_tiers",
					Name:          "Three Tiers",
					Layout:        "Three-column cards with middle plan elevated.",
					ContentFocus:  []string{"Plan name", "Price", "Feature list", "CTA"},
					VisualNotes:   "Scale featured card and add badge chip.",
					BestFor:       []string{"saas", "platforms", "services", "general"},
					CSSPrimitives: []string{"grid-cols-3", "featured-scale", "badge-chip", "icon-list"},
				},
			},
		},
		"timeline": {
			Label:       "Timeline / Process",
			Description: "Steps or milestones to explain journey or roadmap.",
			Variants: []ComponentVariant{
				{
					ID:            "timeline_vertical_cards",
					Name:          "Vertical Cards",
					Layout:        "Stacked cards along a vertical line with alternating alignment.",
					ContentFocus:  []string{"Date", "Title", "Description"},
					VisualNotes:   "Alternate alignment, add soft shadows, include connectors.",
					BestFor:       []string{"agency", "case-study", "education", "general"},
					CSSPrimitives: []string{"timeline", "shadow-lg", "connector-line", "accent-dot"},
				},
			},
		},
	}
}

// LoadComponentLibrary reads a component catalog from a JSON file, falling
// back to the compiled-in defaults on any failure.
func LoadComponentLibrary(path string) (ComponentLibrary, error) {
	if path == "" {
		return DefaultComponentLibrary(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultComponentLibrary(), fmt.Errorf("reading component library: %w", err)
	}
	var lib ComponentLibrary
	if err := json.Unmarshal(data, &lib); err != nil {
		return DefaultComponentLibrary(), fmt.Errorf("parsing component library: %w", err)
	}
	if len(lib) == 0 {
		return DefaultComponentLibrary(), fmt.Errorf("component library file %s is empty", path)
	}
	return lib, nil
}

// businessTypeKeywords drives project tag inference from the user brief.
var businessTypeKeywords = map[string][]string{
	"saas":       {"saas", "software", "platform", "startup", "app", "tech"},
	"agency":     {"agency", "studio", "consult", "freelance", "creative"},
	"services":   {"service", "salon", "spa", "therapy", "coaching"},
	"product":    {"product", "ecommerce", "shop", "store", "retail"},
	"portfolio":  {"portfolio", "photography", "designer", "artist"},
	"education":  {"school", "academy", "bootcamp", "education", "course"},
	"case-study": {"case study", "success story"},
}

// InferProjectTags derives high-level business tags from the brief and an
// optional template name. An unmatched brief is tagged "general".
func InferProjectTags(text, templateName string) map[string]bool {
	tags := make(map[string]bool)
	haystack := strings.ToLower(text + " " + templateName)
	for tag, keywords := range businessTypeKeywords {
		for _, keyword := range keywords {
			if strings.Contains(haystack, keyword) {
				tags[tag] = true
				break
			}
		}
	}
	if len(tags) == 0 {
		tags["general"] = true
	}
	return tags
}

// SelectVariants picks the best variant per section: the first variant whose
// best_for tags intersect the inferred tags, else the section's first variant.
func (lib ComponentLibrary) SelectVariants(tags map[string]bool) map[string]ComponentSelection {
	selections := make(map[string]ComponentSelection)
	for key, section := range lib {
		var chosen *ComponentVariant
		for i, variant := range section.Variants {
			for _, tag := range variant.BestFor {
				if tags[tag] {
					chosen = &section.Variants[i]
					break
				}
			}
			if chosen != nil {
				break
			}
		}
		if chosen == nil && len(section.Variants) > 0 {
			chosen = &section.Variants[0]
		}
		if chosen != nil {
			selections[key] = ComponentSelection{
				SectionLabel:       section.Label,
				SectionDescription: section.Description,
				Variant:            *chosen,
			}
		}
	}
	return selections
}

// BuildBlueprint selects variants for a brief, applies user preferences, and
// renders the blueprint text injected into the generation prompt.
func (lib ComponentLibrary) BuildBlueprint(userPrompt, templateName string, prefs map[string]SectionPreference) (map[string]ComponentSelection, string) {
	tags := InferProjectTags(userPrompt, templateName)
	selections := lib.SelectVariants(tags)

	for key, pref := range prefs {
		section, ok := lib[key]
		if !ok {
			continue
		}
		if pref.Include != nil && !*pref.Include {
			delete(selections, key)
			continue
		}
		var variant *ComponentVariant
		if pref.Variant != "" {
			for i, v := range section.Variants {
				if v.ID == pref.Variant {
					variant = &section.Variants[i]
					break
				}
			}
		}
		if variant == nil && len(section.Variants) > 0 {
			variant = &section.Variants[0]
		}
		if variant != nil {
			selections[key] = ComponentSelection{
				SectionLabel:       section.Label,
				SectionDescription: section.Description,
				Variant:            *variant,
			}
		}
	}

	if len(selections) == 0 {
		return selections, ""
	}

	keys := make([]string, 0, len(selections))
	for key := range selections {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := []string{
		"COMPONENT BLUEPRINT:",
		"Assemble the page using these curated section patterns for consistency.",
	}
	for _, key := range keys {
		sel := selections[key]
		lines = append(lines, fmt.Sprintf("- %s → %s: %s", sel.SectionLabel, sel.Variant.Name, sel.Variant.Layout))
		if len(sel.Variant.ContentFocus) > 0 {
			lines = append(lines, "  Content focus: "+strings.Join(sel.Variant.ContentFocus, ", "))
		}
		if sel.Variant.VisualNotes != "" {
			lines = append(lines, "  Visual notes: "+sel.Variant.VisualNotes)
		}
		if len(sel.Variant.CSSPrimitives) > 0 {
			lines = append(lines, "  CSS primitives: "+strings.Join(sel.Variant.CSSPrimitives, ", "))
		}
	}
	return selections, strings.Join(lines, "\n")
}
