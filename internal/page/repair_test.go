package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairStripsMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "html fence",
			in:   "```html\n<!DOCTYPE html><html></html>\n```",
			want: "<!DOCTYPE html><html></html>",
		},
		{
			name: "bare fence",
			in:   "```\n<html></html>\n```",
			want: "<html></html>",
		},
		{
			name: "no fence untouched",
			in:   "<html></html>",
			want: "<html></html>",
		},
		{
			name: "empty input",
			in:   "   ",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Repair(tt.in))
		})
	}
}

func TestRepairWrapsProjectCards(t *testing.T) {
	in := `<section id="projects"><h2 class="text-3xl">Featured Projects</h2>` +
		`<div class="card-hover bg-white"><h3>Project One</h3></div>` +
		`</section>`

	out := Repair(in)
	assert.Contains(t, out, "<div class='grid md:grid-cols-2 lg:grid-cols-3 gap-8'>")
	assert.Less(t, strings.Index(out, "grid md:grid-cols-2"), strings.Index(out, "card-hover"))
}

func TestRepairWrapsOrphanSkillTags(t *testing.T) {
	in := `<span class="px-4 py-2 bg-gray-100 rounded-full">Go</span>` +
		`<span class="px-4 py-2 bg-gray-100 rounded-full">SQL</span>`

	out := Repair(in)
	assert.Contains(t, out, "<div class='flex flex-wrap gap-3 mt-8'>")
	// Both spans stay inside a single wrapper.
	assert.Equal(t, 1, strings.Count(out, "flex flex-wrap gap-3"))
}

func TestRepairCollapsesClosingDivRuns(t *testing.T) {
	in := "<div><div><div>content</div></div></div></div></div>"
	out := Repair(in)
	assert.NotContains(t, out, "</div></div></div></div>")
	assert.Contains(t, out, "</div></div></div>")
}

func TestRepairDropsEscapedImgTags(t *testing.T) {
	in := `<p>before</p>&lt;img src="x.png" alt="broken"&gt;<p>after</p>`
	out := Repair(in)
	assert.Equal(t, "<p>before</p><p>after</p>", out)
}
