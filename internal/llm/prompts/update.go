package prompts

import "fmt"

// UpdateSystemPrompt is the system role for the conversational update loop.
func UpdateSystemPrompt() string {
	return "You are a web developer updating an existing page. " +
		"Apply only the requested changes and return the complete updated HTML."
}

// UpdatePrompt renders the minimal-change update prompt for an existing page.
func UpdatePrompt(currentHTML, updateInstructions string) string {
	template := `Here is the current HTML of a website:

<current_html>
%s
</current_html>

The user wants to make the following changes/updates:
%s

CRITICAL RULES - MUST FOLLOW EXACTLY:
1. KEEP THE ENTIRE STRUCTURE - Do NOT regenerate the whole page.
2. ONLY modify the specific parts that the user requested.
3. PRESERVE all CSS styling and layout - Do not change CSS unless requested.
4. PRESERVE all existing content - Only change what was asked.
5. PRESERVE all image placeholders - Use EXACTLY the same format: {{image: label}}
6. Do NOT regenerate sections - Just update the requested content.
7. Output ONLY the updated HTML (no explanations or markdown).
8. Ensure the HTML is valid and complete.
9. Make minimal changes - only what was requested.

EXAMPLES:
- "change color to red": only update color values in CSS, keep everything else.
- "add testimonials": add a new section, do not regenerate the whole page.
- "update menu": only change the menu items, keep layout and styling.

Updated HTML:`
	return fmt.Sprintf(template, currentHTML, updateInstructions)
}
