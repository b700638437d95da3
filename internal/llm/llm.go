package llm

import (
	"context"
	"errors"
)

// Client abstracts generative-AI providers. Implementations return the raw
// model completion, which callers decode with DecodeObject.
type Client interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrGenerationFailed wraps outbound provider failures (network, quota,
	// service errors). Provider detail stays server-side.
	ErrGenerationFailed = errors.New("ai generation failed")
	// ErrInvalidResponse means the completion was not parseable JSON even
	// after repair.
	ErrInvalidResponse = errors.New("invalid ai response")
)

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// GenerateJSON returns ErrNotConfigured.
func (PlaceholderClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
