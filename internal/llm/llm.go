package llm

import (
	"context"
	"errors"
	"fmt"

	"insight-backend/internal/config"
)

// ErrNoChoices is returned when the provider answers without any candidate text.
var ErrNoChoices = errors.New("llm: no choices in completion response")

// Request is a single system+user completion call.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Completer turns one prompt into plain completion text.
// Implementations must be safe for concurrent use.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// New returns the completer selected by cfg.Provider. A missing API key is
// not an error here; the provider rejects the call instead.
func New(cfg config.Config) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model), nil
	case config.ProviderGemini:
		return NewGemini(cfg.GeminiAPIKey, "", cfg.GeminiModel), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}
