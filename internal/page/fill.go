package page

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"sitegen_server/internal/images"
)

var (
	// Models sometimes emit real <img> tags despite the placeholder rules;
	// these turn them back into placeholders before resolution.
	urlImgTagRe    = regexp.MustCompile(`<img\s+src="https?://[^"]*"\s+alt="([^"]*)"[^>]*>`)
	nestedImgTagRe = regexp.MustCompile(`<img\s+src="<img\s+src="[^"]*"\s+alt="([^"]*)"[^>]*>"[^>]*>`)

	srcPlaceholderRe  = regexp.MustCompile(`src="\{\{?\s*image:\s*([^{}"]+?)\s*\}\}?"`)
	barePlaceholderRe = regexp.MustCompile(`\{\{?\s*image:\s*([^{}<>]+?)\s*\}\}?`)

	profileLabelRe = regexp.MustCompile(`(?i)profile|avatar|photo|headshot`)
)

// Filler resolves {{image: label}} placeholders in generated HTML by walking
// an ordered chain of image sourcers, preferring user-supplied images.
type Filler struct {
	sources []images.Sourcer
	logger  *zap.Logger
}

// NewFiller builds a filler over the given sourcer chain, tried in order.
func NewFiller(logger *zap.Logger, sources ...images.Sourcer) *Filler {
	return &Filler{sources: sources, logger: logger}
}

// SanitizeImageTags converts literal <img> tags the model emitted back into
// placeholders so every image flows through the same resolution path.
func SanitizeImageTags(html string) string {
	html = nestedImgTagRe.ReplaceAllString(html, "{{image: ${1}}}")
	html = urlImgTagRe.ReplaceAllString(html, "{{image: ${1}}}")
	return html
}

// Fill replaces every image placeholder in html with a resolved URL.
// Resolution order per label: uploaded image for that label, then the sourcer
// chain (profile-like labels get a headshot prompt), then a deterministic
// placeholder URL. Repeated labels resolve once per call.
func (f *Filler) Fill(ctx context.Context, html string, uploaded map[string]string, styleHint string) string {
	html = SanitizeImageTags(html)
	resolved := make(map[string]string)

	lookup := func(label string) string {
		label = strings.TrimSpace(label)
		if cached, ok := resolved[label]; ok {
			return cached
		}

		url := f.resolve(ctx, label, uploaded, styleHint)
		resolved[label] = url
		return url
	}

	// Placeholders inside src attributes keep their surrounding tag.
	html = srcPlaceholderRe.ReplaceAllStringFunc(html, func(match string) string {
		label := srcPlaceholderRe.FindStringSubmatch(match)[1]
		return `src="` + lookup(label) + `"`
	})

	// Standalone placeholders become complete img tags.
	html = barePlaceholderRe.ReplaceAllStringFunc(html, func(match string) string {
		label := strings.TrimSpace(barePlaceholderRe.FindStringSubmatch(match)[1])
		return `<img src="` + lookup(label) + `" alt="` + label + `">`
	})

	return html
}

func (f *Filler) resolve(ctx context.Context, label string, uploaded map[string]string, styleHint string) string {
	if url, ok := uploaded[label]; ok && url != "" {
		f.logger.Debug("using uploaded image", zap.String("label", label))
		return url
	}

	query := label
	width, height := 800, 500
	if profileLabelRe.MatchString(label) {
		query = "professional headshot portrait, " + label + ", high quality, business professional"
		width, height = 400, 400
	}
	if styleHint != "" {
		query += ", " + styleHint
	}

	for _, s := range f.sources {
		url, err := s.Source(ctx, query)
		if err != nil {
			f.logger.Debug("image source failed",
				zap.String("source", s.Name()), zap.String("label", label), zap.Error(err))
			continue
		}
		f.logger.Info("image resolved",
			zap.String("source", s.Name()), zap.String("label", label))
		return url
	}

	f.logger.Warn("all image sources failed, using placeholder", zap.String("label", label))
	return images.PicsumURL(label, width, height)
}
