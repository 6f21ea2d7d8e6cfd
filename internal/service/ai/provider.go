// Package ai abstracts the generative-AI inference providers used for
// code analysis.
package ai

import (
	"context"
	"errors"
)

// Provider names accepted in configuration.
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderGemini     = "gemini"
	ProviderCompatible = "compatible" // OpenAI-compatible endpoint
)

var (
	ErrMissingAPIKey   = errors.New("ai: api key is required")
	ErrMissingModel    = errors.New("ai: model is required")
	ErrInvalidProvider = errors.New("ai: invalid provider")
	ErrMissingBaseURL  = errors.New("ai: base url is required for compatible provider")
)

// Config selects and configures a provider.
type Config struct {
	Provider        string
	APIKey          string
	BaseURL         string
	Model           string
	Thinking        bool
	ReasoningEffort string
}

// Provider performs a single prompt/response exchange.
type Provider interface {
	// Complete submits the prompts and returns the model's text reply.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
	// Name returns the provider name.
	Name() string
}

// NewProvider validates the config and builds the selected provider.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case "", ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Thinking, cfg.ReasoningEffort)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderGemini:
		return NewGeminiProvider(cfg.APIKey, cfg.Model)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return newCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Thinking, cfg.ReasoningEffort)
	}
	return nil, ErrInvalidProvider
}
