package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "VOYAGE_API_KEY", "EMBEDDING_API_KEY", "EMBEDDING_PROVIDER"} {
		t.Setenv(k, "")
	}
}

func TestLoadFile_Defaults(t *testing.T) {
	clearKeys(t)
	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Environment.Name != "test" {
		t.Errorf("Environment.Name = %q, want test", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Router.Threshold != 0.45 {
		t.Errorf("Router.Threshold = %v, want 0.45", cfg.Router.Threshold)
	}
	if cfg.Router.DefaultCategory != "PromptOptimizer" {
		t.Errorf("Router.DefaultCategory = %q", cfg.Router.DefaultCategory)
	}
	if cfg.Handler.Timeout != 60*time.Second {
		t.Errorf("Handler.Timeout = %v, want 60s", cfg.Handler.Timeout)
	}
	if cfg.Conversation.MaxContextMessages != 10 {
		t.Errorf("MaxContextMessages = %d, want 10", cfg.Conversation.MaxContextMessages)
	}
	if cfg.Conversation.Retention != 720*time.Hour {
		t.Errorf("Retention = %v, want 720h", cfg.Conversation.Retention)
	}
	if cfg.RateLimit.RequestsPerMin != 60 {
		t.Errorf("RequestsPerMin = %d, want 60", cfg.RateLimit.RequestsPerMin)
	}
}

func TestLoadFile_SynthesizesOllamaWithoutKeys(t *testing.T) {
	clearKeys(t)
	cfg, err := LoadFile(writeConfig(t, "ollama:\n  model: qwen2.5\n"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if len(cfg.LLM.Providers) != 1 {
		t.Fatalf("providers = %d, want 1", len(cfg.LLM.Providers))
	}
	p := cfg.LLM.Providers[0]
	if p.Name != "ollama" || !p.Enabled || p.Model != "qwen2.5" {
		t.Errorf("provider = %+v", p)
	}
	if cfg.Embedding.Provider != "ollama" {
		t.Errorf("Embedding.Provider = %q, want ollama", cfg.Embedding.Provider)
	}
	if cfg.Embedding.BaseURL != "http://127.0.0.1:11434" {
		t.Errorf("Embedding.BaseURL = %q", cfg.Embedding.BaseURL)
	}
}

func TestLoadFile_SynthesizesGemini(t *testing.T) {
	clearKeys(t)
	cfg, err := LoadFile(writeConfig(t, "gemini_api_key: g-key\n"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].Name != "gemini" {
		t.Fatalf("providers = %+v", cfg.LLM.Providers)
	}
	if cfg.LLM.Providers[0].APIKey != "g-key" {
		t.Errorf("APIKey = %q", cfg.LLM.Providers[0].APIKey)
	}
	if cfg.Embedding.Provider != "gemini" || cfg.Embedding.APIKey != "g-key" {
		t.Errorf("embedding = %+v", cfg.Embedding)
	}
}

func TestLoadFile_ExplicitProviders(t *testing.T) {
	clearKeys(t)
	t.Setenv("AF_TEST_ANTHROPIC_KEY", "secret")
	body := `
voyage_api_key: v-key
llm:
  providers:
    - name: anthropic
      enabled: true
      priority: 1
      api_key: ${AF_TEST_ANTHROPIC_KEY}
      model: claude-sonnet-4-5
    - name: openai
      enabled: false
      priority: 2
      api_key: x
`
	cfg, err := LoadFile(writeConfig(t, body))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("providers = %d, want 2", len(cfg.LLM.Providers))
	}
	if got := cfg.LLM.Providers[0].APIKey; got != "secret" {
		t.Errorf("expanded api key = %q, want secret", got)
	}
	if cfg.Embedding.Provider != "voyage" || cfg.Embedding.APIKey != "v-key" {
		t.Errorf("embedding = %+v", cfg.Embedding)
	}
}

func TestLoadFile_DuplicatePriority(t *testing.T) {
	clearKeys(t)
	body := `
llm:
  providers:
    - name: anthropic
      enabled: true
      priority: 1
      api_key: a
    - name: openai
      enabled: true
      priority: 1
      api_key: b
`
	if _, err := LoadFile(writeConfig(t, body)); err == nil {
		t.Fatal("expected duplicate priority error")
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{name: "empty", cfg: LLMConfig{}, wantErr: true},
		{name: "none enabled", cfg: LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Priority: 1}}}, wantErr: true},
		{name: "missing name", cfg: LLMConfig{Providers: []ProviderConfig{{Enabled: true, Priority: 1}}}, wantErr: true},
		{name: "zero priority", cfg: LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: true}}}, wantErr: true},
		{name: "ok", cfg: LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetIntFromMap(t *testing.T) {
	m := map[string]interface{}{"a": 3, "b": float64(4), "c": "5"}
	if got := getIntFromMap(m, "a"); got != 3 {
		t.Errorf("a = %d", got)
	}
	if got := getIntFromMap(m, "b"); got != 4 {
		t.Errorf("b = %d", got)
	}
	if got := getIntFromMap(m, "c"); got != 0 {
		t.Errorf("c = %d", got)
	}
}
