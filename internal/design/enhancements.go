package design

import (
	"fmt"
	"strings"
)

// Enhancement describes one interactive micro-interaction the user can add
// to a generated page.
type Enhancement struct {
	Label          string `json:"label"`
	Purpose        string `json:"purpose"`
	Placement      string `json:"placement"`
	Implementation string `json:"implementation"`
}

// EnhancementLibrary maps enhancement ids to their specs.
type EnhancementLibrary map[string]Enhancement

// DefaultEnhancements returns the fixed interactive enhancement catalog.
func DefaultEnhancements() EnhancementLibrary {
	return EnhancementLibrary{
		"animated_counters": {
			Label:          "Animated Counters",
			Purpose:        "Highlight key metrics with numbers that ease upward when scrolled into view.",
			Placement:      "Impact stats in hero sections, success metrics, or social proof bands.",
			Implementation: "Use data attributes for target values and trigger the animation when the element enters the viewport.",
		},
		"parallax_timeline": {
			Label:          "Parallax Timeline",
			Purpose:        "Tell a story with milestones that move at different speeds for depth.",
			Placement:      "Roadmaps, brand history, or process sections spanning full width.",
			Implementation: "Use layered backgrounds with translateY offsets and subtle scroll speed differences.",
		},
		"testimonial_carousel": {
			Label:          "Testimonial Carousel",
			Purpose:        "Cycle through quotes automatically while allowing manual control.",
			Placement:      "Trust band or social proof sections near CTAs.",
			Implementation: "Use a lightweight slider (CSS scroll snap or minimal JS) with play/pause on hover.",
		},
		"hover_reveal_cards": {
			Label:          "Hover Reveal Cards",
			Purpose:        "Show additional context or imagery when hovering/focusing on service cards.",
			Placement:      "Services/features grids or portfolio cards.",
			Implementation: "Flip or fade in extended copy via transform and opacity transitions; ensure keyboard focus support.",
		},
		"micro_interaction_cta": {
			Label:          "Magnetic CTA",
			Purpose:        "Primary CTA button subtly follows cursor or pulses to draw attention.",
			Placement:      "Hero or pricing sections.",
			Implementation: "Use small translate transforms tied to mouse position plus glow animation.",
		},
		"lightweight_3d_embed": {
			Label:          "Lightweight 3D Embed",
			Purpose:        "Embed a small WebGL/Spline scene for a premium hero visual.",
			Placement:      "Hero right column or a spotlight section.",
			Implementation: "Use an iframe/container with gentle rotation and provide fallback image.",
		},
	}
}

// InteractiveContext renders the selected enhancement ids into the blueprint
// text injected into generation prompts. Unknown ids are skipped; no valid
// selection yields an empty string.
func (lib EnhancementLibrary) InteractiveContext(selected []string) string {
	var lines []string
	for _, id := range selected {
		spec, ok := lib[id]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"- %s: %s Place it in %s. Implementation notes: %s. "+
				"Include a short caption or subheading that explains the effect's benefit so users understand the premium feel.",
			spec.Label, spec.Purpose, spec.Placement, spec.Implementation))
	}
	if len(lines) == 0 {
		return ""
	}

	header := "INTERACTIVE ENHANCEMENT BLUEPRINT:\n" +
		"Integrate the following micro-interactions. Each chosen effect must be implemented in HTML/CSS (with minimal JS if required), " +
		"kept lightweight, and paired with a brief on-page explanation of why it matters.\n"
	footer := "\nEnsure animations respect prefers-reduced-motion by providing graceful fallbacks."
	return header + strings.Join(lines, "\n") + footer
}
