package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"agentforge/config"
	anth "agentforge/pkg/anthropic"
	"agentforge/pkg/gemini"
	"agentforge/pkg/log"
	"agentforge/pkg/ollama"
	oai "agentforge/pkg/openai"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}
	l = log.OrNop(l)

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	// Filter enabled providers
	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	// Build provider instances - skip failed ones instead of failing entirely
	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(ctx, p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warn(ctx, "llmprovider.InitializeProviders", "error", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		l.Warnf(ctx, "llmprovider.InitializeProviders: %d provider(s) failed to initialize, continuing with %d",
			len(initErrors), len(providers))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config.
// Every provider except ollama needs an API key; an empty model falls back to the client default.
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	name := strings.ToLower(cfg.Name)
	if cfg.APIKey == "" && name != "ollama" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	var httpClient *http.Client
	if cfg.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", cfg.Name, cfg.Timeout, err)
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	switch name {
	case "gemini":
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "openai", "qwen", "alibaba", "deepseek":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = openAICompatibleBaseURL(name)
		}
		client, err := oai.New(oai.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    baseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", name, err)
		}
		return NewOpenAIAdapter(client, name), nil

	case "anthropic", "claude":
		client, err := anth.New(anth.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		return NewAnthropicAdapter(client), nil

	case "ollama":
		client, err := ollama.New(ollama.Config{
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewOllamaAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func openAICompatibleBaseURL(name string) string {
	switch name {
	case "qwen", "alibaba":
		return oai.QwenBaseURL
	case "deepseek":
		return oai.DeepSeekBaseURL
	default:
		return oai.DefaultBaseURL
	}
}

// ManagerConfig converts the fallback settings of cfg into a Manager Config.
// Unset or unparsable durations keep the DefaultConfig values.
func ManagerConfig(cfg *config.LLMConfig) *Config {
	mc := DefaultConfig()
	if cfg == nil {
		return mc
	}

	mc.FallbackEnabled = cfg.FallbackEnabled
	if cfg.RetryAttempts > 0 {
		mc.RetryAttempts = cfg.RetryAttempts
	}
	if d, err := time.ParseDuration(cfg.RetryDelay); err == nil && d >= 0 {
		mc.RetryDelay = d
	}
	if d, err := time.ParseDuration(cfg.MaxTotalTimeout); err == nil && d > 0 {
		mc.MaxTotalTimeout = d
	}
	return mc
}
