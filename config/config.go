package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig

	// Routing and handlers
	Router    RouterConfig
	Embedding EmbeddingConfig
	Handler   HandlerConfig

	// Persistence
	Conversation ConversationConfig

	// LLM Provider Abstraction
	LLM    LLMConfig
	Ollama OllamaConfig
	// GeminiAPIKey is read from gemini_api_key. When empty and no provider is
	// enabled, a local Ollama provider is used.
	GeminiAPIKey string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type MetricsConfig struct {
	Enabled bool
}

type RouterConfig struct {
	Threshold       float64
	DefaultCategory string
	CatalogPath     string
	FallbackTimeout time.Duration
}

type EmbeddingConfig struct {
	Provider  string
	Model     string
	APIKey    string
	BaseURL   string
	BatchSize int
	CacheSize int
	CacheTTL  time.Duration
}

type HandlerConfig struct {
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

type ConversationConfig struct {
	DBPath             string
	MaxContextMessages int
	Retention          time.Duration
	PruneSchedule      string
}

type OllamaConfig struct {
	BaseURL string
	Model   string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile reads configuration from an explicit path (the CLI --config flag).
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")

	// Router
	cfg.Router.Threshold = v.GetFloat64("router.threshold")
	cfg.Router.DefaultCategory = v.GetString("router.default_category")
	cfg.Router.CatalogPath = v.GetString("router.catalog_path")
	cfg.Router.FallbackTimeout = v.GetDuration("router.fallback_timeout")

	// Handlers
	cfg.Handler.Timeout = v.GetDuration("handler.timeout")
	cfg.Handler.Temperature = v.GetFloat64("handler.temperature")
	cfg.Handler.MaxTokens = v.GetInt("handler.max_tokens")

	// Conversation log
	cfg.Conversation.DBPath = v.GetString("conversation.db_path")
	cfg.Conversation.MaxContextMessages = v.GetInt("conversation.max_context_messages")
	cfg.Conversation.Retention = v.GetDuration("conversation.retention")
	cfg.Conversation.PruneSchedule = v.GetString("conversation.prune_schedule")

	// Local model
	cfg.GeminiAPIKey = v.GetString("gemini_api_key")
	cfg.Ollama.BaseURL = v.GetString("ollama.base_url")
	cfg.Ollama.Model = v.GetString("ollama.model")

	// Embeddings
	cfg.Embedding.Provider = strings.ToLower(v.GetString("embedding.provider"))
	cfg.Embedding.Model = v.GetString("embedding.model")
	cfg.Embedding.APIKey = expandEnvVar(v, v.GetString("embedding.api_key"))
	cfg.Embedding.BaseURL = v.GetString("embedding.base_url")
	cfg.Embedding.BatchSize = v.GetInt("embedding.batch_size")
	cfg.Embedding.CacheSize = v.GetInt("embedding.cache_size")
	cfg.Embedding.CacheTTL = v.GetDuration("embedding.cache_ttl")
	if voyageKey := v.GetString("voyage_api_key"); voyageKey != "" && cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = voyageKey
	}
	resolveEmbedding(cfg)

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	// Load provider configurations
	if v.IsSet("llm.providers") {
		providersRaw := v.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}
	synthesizeProviders(cfg)

	// Validate LLM config
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)
	v.SetDefault("metrics.enabled", true)

	// Router
	v.SetDefault("router.threshold", 0.45)
	v.SetDefault("router.default_category", "PromptOptimizer")
	v.SetDefault("router.catalog_path", "")
	v.SetDefault("router.fallback_timeout", "15s")

	// Embeddings
	v.SetDefault("embedding.provider", "voyage")
	v.SetDefault("embedding.model", "")
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.base_url", "")
	v.SetDefault("embedding.batch_size", 32)
	v.SetDefault("embedding.cache_size", 1024)
	v.SetDefault("embedding.cache_ttl", "1h")
	v.SetDefault("voyage_api_key", "")

	// Handlers
	v.SetDefault("handler.timeout", "60s")
	v.SetDefault("handler.temperature", 0.7)
	v.SetDefault("handler.max_tokens", 4096)

	// Conversation log
	v.SetDefault("conversation.db_path", "data/agentforge.db")
	v.SetDefault("conversation.max_context_messages", 10)
	v.SetDefault("conversation.retention", "720h")
	v.SetDefault("conversation.prune_schedule", "@every 1h")

	// Local fallback
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("ollama.base_url", "http://127.0.0.1:11434")
	v.SetDefault("ollama.model", "llama3.2")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s") // Default: 60 seconds for entire fallback chain
}

// synthesizeProviders fills in a provider when none is enabled: Gemini when
// gemini_api_key is set, otherwise the local Ollama model.
func synthesizeProviders(cfg *Config) {
	for _, p := range cfg.LLM.Providers {
		if p.Enabled {
			return
		}
	}

	if cfg.GeminiAPIKey != "" {
		cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
			Name:     "gemini",
			Enabled:  true,
			Priority: 1,
			APIKey:   cfg.GeminiAPIKey,
		})
		return
	}

	cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
		Name:     "ollama",
		Enabled:  true,
		Priority: 1,
		BaseURL:  cfg.Ollama.BaseURL,
		Model:    cfg.Ollama.Model,
	})
}

// resolveEmbedding switches a keyless voyage setup to Gemini when its key is
// present, and to the local Ollama encoder otherwise.
func resolveEmbedding(cfg *Config) {
	if cfg.Embedding.Provider != "voyage" || cfg.Embedding.APIKey != "" {
		return
	}
	if cfg.GeminiAPIKey != "" {
		cfg.Embedding.Provider = "gemini"
		cfg.Embedding.APIKey = cfg.GeminiAPIKey
		return
	}
	cfg.Embedding.Provider = "ollama"
	if cfg.Embedding.BaseURL == "" {
		cfg.Embedding.BaseURL = cfg.Ollama.BaseURL
	}
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			// Check priority is valid
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			// Check for duplicate priorities
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
