package ollama

import "time"

const (
	// DefaultBaseURL is the local Ollama API endpoint
	DefaultBaseURL = "http://127.0.0.1:11434"

	// DefaultModel is the default local chat model
	DefaultModel = "llama3.2"

	// DefaultEmbeddingModel is the default local embedding model
	DefaultEmbeddingModel = "all-minilm"

	// DefaultTimeout is the default HTTP client timeout; local models can be slow
	DefaultTimeout = 120 * time.Second
)
