package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sitegen_server/internal/utils"
)

// Chain tries a fixed sequence of providers until one returns a completion.
type Chain struct {
	providers []Provider
	logger    *zap.Logger
}

// NewChain builds a fallback chain over the given providers, in order.
func NewChain(logger *zap.Logger, providers ...Provider) *Chain {
	return &Chain{providers: providers, logger: logger}
}

// Providers returns the names of the configured providers, in chain order.
func (c *Chain) Providers() []string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return names
}

// Generate walks the chain. Unavailable providers are skipped; transient
// provider errors get a single retry before falling through to the next
// provider. The returned string is the first non-empty completion.
func (c *Chain) Generate(ctx context.Context, req Request) (string, error) {
	tried := 0
	var lastErr error

	for _, p := range c.providers {
		if !p.Available() {
			c.logger.Debug("provider unavailable, skipping", zap.String("provider", p.Name()))
			continue
		}
		tried++

		text, err := p.Generate(ctx, req)
		if err != nil && utils.ShouldRetry(err) {
			c.logger.Warn("provider call failed, retrying once",
				zap.String("provider", p.Name()), zap.Error(err))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(2 * time.Second):
			}
			text, err = p.Generate(ctx, req)
		}
		if err == nil {
			c.logger.Info("completion served",
				zap.String("provider", p.Name()), zap.Int("chars", len(text)))
			return text, nil
		}

		lastErr = err
		c.logger.Warn("provider failed, falling back",
			zap.String("provider", p.Name()), zap.Error(err))

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	if tried == 0 {
		return "", ErrNoProvider
	}
	return "", fmt.Errorf("%w: last error: %v", ErrAllProvidersFailed, lastErr)
}
