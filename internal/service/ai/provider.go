//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package ai

import (
	"context"
	"errors"
)

// Provider names accepted in configuration.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

// Gemini exposes an OpenAI-compatible surface, so the openai client
// talks to it directly.
const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

var (
	ErrMissingAPIKey   = errors.New("api key is required")
	ErrMissingModel    = errors.New("model is required")
	ErrMissingBaseURL  = errors.New("base url is required")
	ErrInvalidProvider = errors.New("invalid provider")
)

var defaultModels = map[string]string{
	ProviderGemini:    "gemini-2.0-flash",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-sonnet-4-20250514",
}

// Config describes how to reach a provider. The API key always comes
// from the request, never from server configuration.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// Image is one uploaded screenshot handed to a provider.
type Image struct {
	Filename string
	MimeType string
	Data     []byte
}

// Provider wraps one hosted multimodal API.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Model returns the model in use.
	Model() string
	// ExtractChat sends the prompt plus the image to the provider's
	// vision endpoint and returns the raw model text.
	ExtractChat(ctx context.Context, prompt string, img Image) (string, error)
	// Test sends a trivial prompt, used for API key validation.
	Test(ctx context.Context) (string, error)
}

// NewProvider creates a provider from the given config. The provider
// defaults to gemini and the model to the provider's default.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	name := cfg.Provider
	if name == "" {
		name = ProviderGemini
	}
	model := cfg.Model
	if model == "" {
		model = defaultModels[name]
	}

	switch name {
	case ProviderGemini:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = geminiBaseURL
		}
		return NewOpenAIProvider(cfg.APIKey, baseURL, model, ProviderGemini), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, model, ProviderOpenAI), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, model), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		if model == "" {
			return nil, ErrMissingModel
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, model, ProviderCompatible), nil
	default:
		return nil, ErrInvalidProvider
	}
}

// Factory creates a provider for one request's API key. Services hold
// a Factory so tests can substitute providers.
type Factory func(apiKey string) (Provider, error)

// NewFactory binds the server-side provider settings, leaving only the
// per-request API key open.
func NewFactory(provider, model, baseURL string) Factory {
	return func(apiKey string) (Provider, error) {
		return NewProvider(Config{
			Provider: provider,
			APIKey:   apiKey,
			Model:    model,
			BaseURL:  baseURL,
		})
	}
}
