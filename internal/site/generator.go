package site

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sitegen_server/internal/design"
	"sitegen_server/internal/llm"
	"sitegen_server/internal/llm/prompts"
	"sitegen_server/internal/page"
)

const (
	generationTemperature = 0.6
	generationMaxTokens   = 8192
	maxGenerationAttempts = 2
)

// Completer is the slice of the LLM chain the generator needs.
type Completer interface {
	Generate(ctx context.Context, req llm.Request) (string, error)
}

// Generator orchestrates brief-to-page generation and the update loop:
// prompt assembly, the provider fallback chain, HTML repair, and image
// placeholder resolution.
type Generator struct {
	chain        Completer
	presets      design.PresetCatalog
	library      design.ComponentLibrary
	enhancements design.EnhancementLibrary
	filler       *page.Filler
	logger       *zap.Logger
}

// NewGenerator wires the generation service.
func NewGenerator(
	chain Completer,
	presets design.PresetCatalog,
	library design.ComponentLibrary,
	enhancements design.EnhancementLibrary,
	filler *page.Filler,
	logger *zap.Logger,
) *Generator {
	return &Generator{
		chain:        chain,
		presets:      presets,
		library:      library,
		enhancements: enhancements,
		filler:       filler,
		logger:       logger,
	}
}

// GenerateInput is a brief plus its design options.
type GenerateInput struct {
	Prompt            string
	StylePreset       string
	ReferenceURL      string
	ProfileImageURL   string
	UploadedImages    map[string]string
	PreferredSections map[string]design.SectionPreference
	Enhancements      []string
}

// UpdateInput is one turn of the conversational update loop.
type UpdateInput struct {
	CurrentHTML       string
	UpdatePrompt      string
	OriginalPrompt    string
	StylePreset       string
	UploadedImages    map[string]string
	PreferredSections map[string]design.SectionPreference
}

// Result is a finished page plus the blueprint that shaped it.
type Result struct {
	HTML       string
	Blueprint  string
	Selections map[string]design.ComponentSelection
}

// Generate turns a brief into a complete HTML page.
func (g *Generator) Generate(ctx context.Context, in GenerateInput) (*Result, error) {
	styleContext, styleHint := g.presets.StyleContext(in.StylePreset)

	selections, blueprint := g.library.BuildBlueprint(in.Prompt, "", in.PreferredSections)

	var blocks []string
	blocks = append(blocks, prompts.SitePrompt(in.Prompt))

	if in.ReferenceURL != "" {
		refContext, err := page.FetchReferenceDesign(ctx, in.ReferenceURL)
		if err != nil {
			g.logger.Warn("reference website unavailable, continuing without it",
				zap.String("url", in.ReferenceURL), zap.Error(err))
		} else {
			blocks = append(blocks, "REFERENCE WEBSITE DESIGN:\n"+refContext)
		}
	}

	uploaded := CollectImages(in.ProfileImageURL, in.UploadedImages)
	if _, ok := uploaded["profile"]; ok {
		blocks = append(blocks, "PROFILE IMAGE: The user supplied a profile picture. "+
			"Use the {{image: profile}} placeholder to include it in the design.")
	}
	if styleContext != "" {
		blocks = append(blocks, styleContext)
	}
	if ic := g.enhancements.InteractiveContext(in.Enhancements); ic != "" {
		blocks = append(blocks, ic)
	}
	if blueprint != "" {
		blocks = append(blocks, blueprint)
	}

	fullPrompt := strings.Join(blocks, "\n\n")

	html, err := g.complete(ctx, prompts.SiteSystemPrompt(), fullPrompt)
	if err != nil {
		return nil, err
	}

	html = page.Repair(html)
	html = g.filler.Fill(ctx, html, uploaded, styleHint)

	return &Result{HTML: html, Blueprint: blueprint, Selections: selections}, nil
}

// Update applies a change request to an existing page, preserving everything
// the user did not ask to change.
func (g *Generator) Update(ctx context.Context, in UpdateInput) (*Result, error) {
	styleContext, styleHint := g.presets.StyleContext(in.StylePreset)

	componentSource := in.OriginalPrompt
	if componentSource == "" {
		componentSource = in.UpdatePrompt
	}
	selections, blueprint := g.library.BuildBlueprint(componentSource, "", in.PreferredSections)

	blocks := []string{prompts.UpdatePrompt(in.CurrentHTML, in.UpdatePrompt)}
	if styleContext != "" {
		blocks = append(blocks, styleContext)
	}
	if blueprint != "" {
		blocks = append(blocks, blueprint)
	}

	html, err := g.complete(ctx, prompts.UpdateSystemPrompt(), strings.Join(blocks, "\n\n"))
	if err != nil {
		return nil, err
	}

	html = page.SanitizeImageTags(html)
	html = page.Repair(html)
	html = g.filler.Fill(ctx, html, in.UploadedImages, styleHint)

	return &Result{HTML: html, Blueprint: blueprint, Selections: selections}, nil
}

// complete runs the chain, retrying once when a pass yields an empty page.
func (g *Generator) complete(ctx context.Context, system, prompt string) (string, error) {
	req := llm.Request{
		System:      system,
		Prompt:      prompt,
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	}

	var lastErr error
	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		html, err := g.chain.Generate(ctx, req)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(html) != "" {
			return html, nil
		}
		lastErr = llm.ErrEmptyCompletion
		g.logger.Warn("empty page from provider chain, retrying", zap.Int("attempt", attempt))
	}
	return "", fmt.Errorf("generation produced no content: %w", lastErr)
}

// CollectImages merges labeled image URLs with an optional profile image URL
// under the "profile" label. Profile URLs with schemes other than http(s) or
// data: are dropped.
func CollectImages(profileURL string, extra map[string]string) map[string]string {
	uploaded := make(map[string]string, len(extra)+1)
	for label, url := range extra {
		uploaded[label] = url
	}
	if profileURL != "" && (strings.HasPrefix(profileURL, "http://") ||
		strings.HasPrefix(profileURL, "https://") || strings.HasPrefix(profileURL, "data:")) {
		if _, taken := uploaded["profile"]; !taken {
			uploaded["profile"] = profileURL
		}
	}
	return uploaded
}
