package llm

import (
	"context"
	"fmt"
)

// Options selects and configures the provider. Provider is one of
// "gemini" (default), "anthropic", or "mock".
type Options struct {
	Provider        string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	Retry           RetryConfig
}

// New builds the configured provider wrapped with retry logic.
func New(ctx context.Context, opts Options) (Provider, error) {
	var (
		p   Provider
		err error
	)

	switch opts.Provider {
	case "mock":
		p = NewMockProvider()
	case "anthropic":
		p, err = NewAnthropicProvider(opts.AnthropicAPIKey, opts.AnthropicModel)
	case "", "gemini":
		p, err = NewGeminiProvider(ctx, opts.GeminiAPIKey, opts.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", opts.Provider)
	}
	if err != nil {
		return nil, err
	}

	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = DefaultRetryConfig()
	}
	return WithRetry(p, opts.Retry), nil
}
