package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvider struct {
	name      string
	available bool
	responses []string
	errs      []error
	calls     int
}

func (s *stubProvider) Name() string    { return s.name }
func (s *stubProvider) Available() bool { return s.available }

func (s *stubProvider) Generate(ctx context.Context, req Request) (string, error) {
	idx := s.calls
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	s.calls++
	return s.responses[idx], s.errs[idx]
}

func TestChainGenerate(t *testing.T) {
	req := Request{Prompt: "build a page", MaxTokens: 64}

	t.Run("no available providers", func(t *testing.T) {
		chain := NewChain(zap.NewNop(),
			&stubProvider{name: "openai", available: false, responses: []string{""}, errs: []error{nil}},
		)
		_, err := chain.Generate(context.Background(), req)
		assert.ErrorIs(t, err, ErrNoProvider)
	})

	t.Run("first available provider wins", func(t *testing.T) {
		first := &stubProvider{name: "gemini", available: true, responses: []string{"<html/>"}, errs: []error{nil}}
		second := &stubProvider{name: "openai", available: true, responses: []string{"unused"}, errs: []error{nil}}
		chain := NewChain(zap.NewNop(), first, second)

		out, err := chain.Generate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "<html/>", out)
		assert.Zero(t, second.calls)
	})

	t.Run("unavailable providers are skipped", func(t *testing.T) {
		dark := &stubProvider{name: "gemini", available: false, responses: []string{""}, errs: []error{nil}}
		lit := &stubProvider{name: "groq", available: true, responses: []string{"page"}, errs: []error{nil}}
		chain := NewChain(zap.NewNop(), dark, lit)

		out, err := chain.Generate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "page", out)
		assert.Zero(t, dark.calls)
	})

	t.Run("falls back past a failing provider", func(t *testing.T) {
		broken := &stubProvider{name: "gemini", available: true,
			responses: []string{""}, errs: []error{errors.New("invalid api key")}}
		healthy := &stubProvider{name: "openai", available: true, responses: []string{"ok"}, errs: []error{nil}}
		chain := NewChain(zap.NewNop(), broken, healthy)

		out, err := chain.Generate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
		assert.Equal(t, 1, broken.calls)
	})

	t.Run("transient error is retried once on the same provider", func(t *testing.T) {
		flaky := &stubProvider{name: "groq", available: true,
			responses: []string{"", "recovered"},
			errs:      []error{errors.New("rate limit exceeded"), nil}}
		chain := NewChain(zap.NewNop(), flaky)

		out, err := chain.Generate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "recovered", out)
		assert.Equal(t, 2, flaky.calls)
	})

	t.Run("all providers failing wraps ErrAllProvidersFailed", func(t *testing.T) {
		chain := NewChain(zap.NewNop(),
			&stubProvider{name: "gemini", available: true, responses: []string{""}, errs: []error{errors.New("boom")}},
			&stubProvider{name: "openai", available: true, responses: []string{""}, errs: []error{errors.New("bust")}},
		)
		_, err := chain.Generate(context.Background(), req)
		assert.ErrorIs(t, err, ErrAllProvidersFailed)
		assert.ErrorContains(t, err, "bust")
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		untouched := &stubProvider{name: "openai", available: true, responses: []string{"never"}, errs: []error{nil}}
		chain := NewChain(zap.NewNop(),
			&stubProvider{name: "gemini", available: true, responses: []string{""}, errs: []error{errors.New("boom")}},
			untouched,
		)
		_, err := chain.Generate(ctx, req)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, untouched.calls)
	})
}

func TestChainProviders(t *testing.T) {
	chain := NewChain(zap.NewNop(),
		&stubProvider{name: "gemini", responses: []string{""}, errs: []error{nil}},
		&stubProvider{name: "ollama", responses: []string{""}, errs: []error{nil}},
	)
	assert.Equal(t, []string{"gemini", "ollama"}, chain.Providers())
}

func TestOrder(t *testing.T) {
	tests := []struct {
		preference string
		want       []string
	}{
		{"groq", []string{"groq", "openai", "anthropic", "gemini", "ollama"}},
		{"ollama", []string{"ollama", "groq", "openai", "anthropic", "gemini"}},
		{"gemini", []string{"gemini", "openai", "anthropic", "groq", "ollama"}},
		{"openai", []string{"openai", "gemini", "anthropic", "groq", "ollama"}},
		{"claude", []string{"anthropic", "openai", "gemini", "groq", "ollama"}},
		{"anthropic", []string{"anthropic", "openai", "gemini", "groq", "ollama"}},
		{"", []string{"gemini", "openai", "anthropic", "groq", "ollama"}},
		{"unknown", []string{"gemini", "openai", "anthropic", "groq", "ollama"}},
	}
	for _, tt := range tests {
		t.Run("preference "+tt.preference, func(t *testing.T) {
			assert.Equal(t, tt.want, Order(tt.preference))
		})
	}
}
