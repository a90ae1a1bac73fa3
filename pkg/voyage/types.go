package voyage

// EmbedRequest is the body of POST /embeddings.
type EmbedRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
	// InputType is "query", "document" or empty. The router leaves it empty so
	// catalog phrases and user text are embedded the same way.
	InputType string `json:"input_type,omitempty"`
}

// EmbedResponse carries one entry per input. Entries may arrive out of order.
type EmbedResponse struct {
	Data  []EmbedData `json:"data"`
	Model string      `json:"model"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

type EmbedData struct {
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// ErrorResponse is the body of non-200 replies.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
