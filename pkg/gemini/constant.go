package gemini

import "time"

const (
	// DefaultModel is the default Gemini generation model
	DefaultModel = "gemini-2.5-flash"

	// DefaultEmbeddingModel is the default Gemini embedding model
	DefaultEmbeddingModel = "gemini-embedding-001"

	// DefaultEmbeddingTaskType tunes embeddings for similarity comparison
	DefaultEmbeddingTaskType = "SEMANTIC_SIMILARITY"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
