package prompts

import "fmt"

// SiteSystemPrompt is the system role for first-pass page generation.
func SiteSystemPrompt() string {
	return "You are a web designer AI that produces complete, self-contained HTML pages " +
		"from natural-language briefs, following the formatting rules exactly."
}

// SitePrompt renders the page-generation prompt for a user brief. Context
// blocks (style guidance, component blueprint, etc.) are appended by the
// caller after this base.
func SitePrompt(userPrompt string) string {
	template := `
		Create a single HTML page based on this description: %s

		CONTEXT-AWARE DESIGN GUIDANCE:
		Analyze the request and apply appropriate design:
		- Professional/resume sites: clean minimal design, professional colors (navy, gray, white),
		  sans-serif fonts, sections for About, Skills, Experience, Education, Contact.
		- Restaurant/food businesses: warm inviting colors (orange, brown, cream, gold),
		  food and interior imagery, no profile photos.
		- E-commerce/product sites: product-focused layouts with clear CTAs.
		- Creative portfolios: bold modern design with vibrant colors and showcase sections.
		- Service businesses (salon, spa, barber): service and interior imagery, team photos.

		CRITICAL RULES - MUST FOLLOW EXACTLY:
		1. Output ONLY valid HTML (no explanations or markdown).
		2. Include CSS in <style> tags and minimal JavaScript in <script> tags.
		3. NEVER use <img src="..."> with actual URLs.
		4. For EVERY image, use EXACTLY this format: {{image: descriptive-label}}
		   - Replace the entire <img> tag with just the placeholder.
		   - WRONG: <img src="https://...">
		   - CORRECT: {{image: hero-banner}}
		5. IMAGE LABELS MUST BE CONTEXT-SPECIFIC:
		   - A farm shop gets {{image: farm-produce}}, {{image: fresh-vegetables}}.
		   - A restaurant gets {{image: food-dish}}, {{image: restaurant-interior}}.
		   - A salon gets {{image: salon-interior}}, {{image: haircut-style}}.
		   - NEVER use vague labels like "nature", "landscape", "road", "lights".
		6. Keep CSS concise. Use flexbox/grid for layout.
		7. Make it responsive and visually appealing.
		8. Ensure the page is complete and ready to save as .html.
		9. Do NOT generate any URLs or fetch images - only use {{image: label}} placeholders.
	`
	return fmt.Sprintf(template, userPrompt)
}
