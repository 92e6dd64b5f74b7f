package llm

import (
	"context"
	"fmt"

	"github.com/padsala/padsala-api/internal/config"
)

// NewProvider builds the provider selected by cfg.Provider and wraps it with
// retry. It returns (nil, nil) when LLM access is disabled, either because
// the provider is "none" or because the selected provider has no key.
func NewProvider(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case config.LLMProviderGemini:
		p, err = NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.ModelName)
	case config.LLMProviderOpenAI:
		p, err = NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.ModelName)
	case config.LLMProviderAnthropic:
		p, err = NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.ModelName)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	retry := DefaultRetryConfig()
	if cfg.MaxAttempts > 0 {
		retry.MaxAttempts = cfg.MaxAttempts
	}
	return WithRetry(p, retry), nil
}
