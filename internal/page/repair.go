package page

import (
	"regexp"
	"strings"
)

var (
	fenceOpenRe  = regexp.MustCompile("(?i)^\\s*```(?:html)?\\s*")
	fenceCloseRe = regexp.MustCompile("\\s*```\\s*$")

	orphanSkillTagsRe = regexp.MustCompile(`(\s*<span class="px-4 py-2 bg-gray-100[^>]*>[^<]*</span>\s*)+`)
	projectGridRe     = regexp.MustCompile(`(?s)(<section[^>]*>.*?<h2[^>]*>Featured Projects</h2>.*?)(<div class="card-hover[^>]*>.*?</div>)(.*?</section>)`)
	skillBarsRe       = regexp.MustCompile(`(?s)(<section[^>]*>.*?<h2[^>]*>Skills[^<]*</h2>.*?)(<div class="space-y-4">\s*<div class="flex justify-between[^>]*>.*?</div>\s*<div class="bg-gray-200[^>]*>.*?</div>\s*</div>)(.*?</section>)`)
	closingDivRunRe   = regexp.MustCompile(`(</div>){4,}`)
	entityImgRe       = regexp.MustCompile(`&lt;img.*?&gt;`)
)

// Repair fixes the layout defects models commonly leave in generated pages:
// markdown fences around the document, orphaned skill tags, bare project
// cards missing their grid container, and runs of duplicate closing divs.
func Repair(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return html
	}

	html = fenceOpenRe.ReplaceAllString(html, "")
	html = fenceCloseRe.ReplaceAllString(html, "")
	html = strings.TrimSpace(html)

	html = projectGridRe.ReplaceAllString(html,
		"${1}<div class='grid md:grid-cols-2 lg:grid-cols-3 gap-8'>${2}</div>${3}")

	html = skillBarsRe.ReplaceAllString(html,
		"${1}<div class='max-w-4xl mx-auto space-y-8'>${2}</div>${3}")

	html = orphanSkillTagsRe.ReplaceAllStringFunc(html, func(match string) string {
		return "<div class='flex flex-wrap gap-3 mt-8'>" + match + "</div>"
	})

	html = closingDivRunRe.ReplaceAllString(html, "</div></div></div>")

	html = entityImgRe.ReplaceAllString(html, "")

	return strings.TrimSpace(html)
}
