package llm

import (
	"context"
	"errors"
)

// Client abstracts structured-text completion providers.
type Client interface {
	Complete(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error) {
	_ = ctx
	_ = system
	_ = user
	return "", ErrNotConfigured
}
