package llm

import (
	"context"
	"errors"
)

// Request is a unified completion request passed to every provider.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Provider is the interface every LLM backend implements.
type Provider interface {
	// Name returns the provider identifier (e.g. "openai", "gemini").
	Name() string

	// Generate performs a completion and returns the raw model text.
	Generate(ctx context.Context, req Request) (string, error)

	// Available reports whether the provider is configured (API key present,
	// endpoint reachable configuration-wise). Unavailable providers are
	// skipped by the fallback chain.
	Available() bool
}

var (
	// ErrNoProvider is returned when no provider in the chain is configured.
	ErrNoProvider = errors.New("no llm provider configured")

	// ErrAllProvidersFailed is returned when every configured provider errored.
	ErrAllProvidersFailed = errors.New("all llm providers failed")

	// ErrEmptyCompletion is returned by a provider whose response carried no text.
	ErrEmptyCompletion = errors.New("provider returned empty completion")
)

// Order returns the provider fallback sequence for a preference string.
// The preferred provider is tried first; the rest keep the hosted
// coding-tuned models ahead of the local one.
func Order(preference string) []string {
	switch preference {
	case "groq":
		return []string{"groq", "openai", "anthropic", "gemini", "ollama"}
	case "ollama":
		return []string{"ollama", "groq", "openai", "anthropic", "gemini"}
	case "gemini":
		return []string{"gemini", "openai", "anthropic", "groq", "ollama"}
	case "openai":
		return []string{"openai", "gemini", "anthropic", "groq", "ollama"}
	case "claude", "anthropic":
		return []string{"anthropic", "openai", "gemini", "groq", "ollama"}
	default:
		return []string{"gemini", "openai", "anthropic", "groq", "ollama"}
	}
}
