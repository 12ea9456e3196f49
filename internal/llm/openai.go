package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL       = "https://api.groq.com/openai/v1"
	defaultOllamaBase = "http://localhost:11434/v1"
)

// OpenAICompatible serves every backend that speaks the OpenAI chat
// completion protocol: OpenAI itself, Groq, and a local Ollama daemon.
type OpenAICompatible struct {
	client    *openai.Client
	name      string
	model     string
	available bool
}

// NewOpenAI builds a provider against api.openai.com.
func NewOpenAI(apiKey, model string) *OpenAICompatible {
	return &OpenAICompatible{
		client:    openai.NewClient(apiKey),
		name:      "openai",
		model:     model,
		available: apiKey != "",
	}
}

// NewGroq builds a provider against Groq's OpenAI-compatible endpoint.
func NewGroq(apiKey, model string) *OpenAICompatible {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &OpenAICompatible{
		client:    openai.NewClientWithConfig(cfg),
		name:      "groq",
		model:     model,
		available: apiKey != "",
	}
}

// NewOllama builds a provider against a local Ollama daemon. Ollama needs no
// API key, so the provider is always in the chain; a dead daemon simply fails
// over like any other provider error.
func NewOllama(baseURL, model string) *OpenAICompatible {
	if baseURL == "" {
		baseURL = defaultOllamaBase
	}
	cfg := openai.DefaultConfig("ollama")
	cfg.BaseURL = baseURL
	return &OpenAICompatible{
		client:    openai.NewClientWithConfig(cfg),
		name:      "ollama",
		model:     model,
		available: true,
	}
}

func (p *OpenAICompatible) Name() string    { return p.name }
func (p *OpenAICompatible) Available() bool { return p.available }

func (p *OpenAICompatible) Generate(ctx context.Context, req Request) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem, Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: req.Prompt,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s chat completion failed: %w", p.name, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%s: %w", p.name, ErrEmptyCompletion)
	}
	return resp.Choices[0].Message.Content, nil
}
