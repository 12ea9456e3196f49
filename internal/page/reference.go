package page

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

var (
	titleRe      = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	metaDescRe   = regexp.MustCompile(`(?i)<meta\s+name="description"\s+content="([^"]*)"`)
	styleBlockRe = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)
	hexColorRe   = regexp.MustCompile(`#[0-9a-fA-F]{6}`)
	fontFamilyRe = regexp.MustCompile(`font-family:\s*([^;,}]+)`)
	headerRe     = regexp.MustCompile(`(?i)<header|<nav`)
	footerRe     = regexp.MustCompile(`(?i)<footer`)
	heroRe       = regexp.MustCompile(`(?i)hero|banner|jumbotron`)
)

const referenceSampleLimit = 2000

// FetchReferenceDesign downloads a reference website and summarizes its
// design (title, colors, fonts, layout elements) into prompt guidance text.
func FetchReferenceDesign(ctx context.Context, rawURL string) (string, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building reference request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching reference website: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reference website returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading reference website: %w", err)
	}
	html := string(body)

	var b strings.Builder
	fmt.Fprintf(&b, "REFERENCE WEBSITE URL: %s\n\n", rawURL)

	if m := titleRe.FindStringSubmatch(html); m != nil {
		fmt.Fprintf(&b, "Website Title: %s\n", strings.TrimSpace(m[1]))
	}
	if m := metaDescRe.FindStringSubmatch(html); m != nil {
		fmt.Fprintf(&b, "Description: %s\n", m[1])
	}
	if m := styleBlockRe.FindStringSubmatch(html); m != nil {
		css := m[1]
		if len(css) > 1000 {
			css = css[:1000]
		}
		if colors := dedupe(hexColorRe.FindAllString(css, 5)); len(colors) > 0 {
			fmt.Fprintf(&b, "Color Scheme: %s\n", strings.Join(colors, ", "))
		}
	}
	if fonts := fontFamilyRe.FindAllStringSubmatch(html, 3); len(fonts) > 0 {
		var names []string
		for _, m := range fonts {
			names = append(names, strings.TrimSpace(m[1]))
		}
		fmt.Fprintf(&b, "Fonts Used: %s\n", strings.Join(dedupe(names), ", "))
	}

	var elements []string
	if headerRe.MatchString(html) {
		elements = append(elements, "Header/Navigation")
	}
	if heroRe.MatchString(html) {
		elements = append(elements, "Hero Section")
	}
	if footerRe.MatchString(html) {
		elements = append(elements, "Footer")
	}
	if len(elements) == 0 {
		elements = append(elements, "Standard layout")
	}
	fmt.Fprintf(&b, "\nLayout Elements: %s\n", strings.Join(elements, ", "))

	sample := html
	if len(sample) > referenceSampleLimit {
		sample = sample[:referenceSampleLimit]
	}
	fmt.Fprintf(&b, "\nHTML Structure Sample (first %d chars):\n%s\n", referenceSampleLimit, sample)

	b.WriteString("\n\nINSTRUCTIONS: Analyze this website's design, layout, color scheme, typography, and structure. " +
		"Create a similar design for the new website with the same professional appearance and layout style.")

	return b.String(), nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
