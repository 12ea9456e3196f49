package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini calls the Google Gemini API through the genai SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds the Gemini provider. With an empty API key the provider
// stays in the chain but reports itself unavailable.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	g := &Gemini{model: model}
	if apiKey == "" {
		return g, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

func (p *Gemini) Name() string    { return "gemini" }
func (p *Gemini) Available() bool { return p.client != nil }

func (p *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("gemini: %w", ErrNoProvider)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: %w", ErrEmptyCompletion)
	}
	return text, nil
}
