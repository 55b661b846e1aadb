package pagegen

import (
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Config contains client-wide configuration. It is read once by New and is
// immutable afterwards; the library never touches process configuration on
// its own unless DetectEnv is set.
type Config struct {
	// Provider selects the backend. Defaults to ProviderGoogle.
	Provider Provider

	// APIKey gates the whole pipeline: when empty the model is never
	// contacted and GeneratePage returns the canned fallback.
	APIKey string

	// Model optionally overrides the default model. The override is honored
	// only when it names a model of the selected provider's family
	// (gemini* for Google, gpt* for OpenAI); anything else falls back to
	// the fixed default.
	Model string

	// BaseURL optionally points at a custom or proxy endpoint.
	BaseURL string

	// Shared client options.
	HTTPClient *http.Client
	Timeout    time.Duration

	// Logger receives operational logging. Defaults to zap.NewNop().
	Logger *zap.Logger

	// DetectEnv pulls a missing APIKey from the environment:
	// GEMINI_API_KEY then GOOGLE_API_KEY for Google, OPENAI_API_KEY for
	// OpenAI.
	DetectEnv bool
}

const (
	defaultGoogleModel = "gemini-2.5-flash"
	defaultOpenAIModel = "gpt-4o-mini"
)

// withDefaults normalizes a caller-supplied config.
func (cfg Config) withDefaults() Config {
	if cfg.Provider == "" {
		cfg.Provider = ProviderGoogle
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.DetectEnv && cfg.APIKey == "" {
		switch cfg.Provider {
		case ProviderGoogle:
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
			if cfg.APIKey == "" {
				cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
			}
		case ProviderOpenAI:
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	return cfg
}

// resolveModel applies the model-family rule: an override is used only when
// it belongs to the expected family, otherwise the fixed default wins.
func resolveModel(provider Provider, override string) string {
	switch provider {
	case ProviderOpenAI:
		if strings.HasPrefix(override, "gpt") {
			return override
		}
		return defaultOpenAIModel
	default:
		if strings.HasPrefix(override, "gemini") {
			return override
		}
		return defaultGoogleModel
	}
}
