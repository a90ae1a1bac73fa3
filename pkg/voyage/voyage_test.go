package voyage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agentforge/pkg/voyage"
)

func TestVoyageClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req voyage.EmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if len(req.Input) > 0 && req.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if req.InputType != "query" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"missing input_type"}}`))
			return
		}

		// Out-of-order data to check the index mapping.
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"data": [
				{"embedding": [0.4, 0.5, 0.6], "index": 1},
				{"embedding": [0.1, 0.2, 0.3], "index": 0}
			]
		}`))
	}))
	defer ts.Close()

	client, err := voyage.New(voyage.Config{
		APIKey:    "test-voyage-key",
		BaseURL:   ts.URL,
		Model:     "custom-model",
		InputType: "query",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		emb, err := client.Embed(context.Background(), []string{"Hello", "world"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != 2 || len(emb[0]) != 3 {
			t.Fatalf("expected 2 embeds with 3 dims, got len=%d", len(emb))
		}
		if emb[0][0] != 0.1 || emb[1][0] != 0.4 {
			t.Errorf("unexpected embedding order: %v", emb)
		}
	})

	t.Run("Count Mismatch", func(t *testing.T) {
		_, err := client.Embed(context.Background(), []string{"only one"})
		if err == nil || !strings.Contains(err.Error(), "expected 1 embeddings") {
			t.Fatalf("expected count mismatch error, got %v", err)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Embed(context.Background(), []string{"cause_500"})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		_, err := client.Embed(context.Background(), nil)
		if err == nil {
			t.Fatalf("expected error for empty input")
		}
	})

	t.Run("API Error Message", func(t *testing.T) {
		noType, _ := voyage.New(voyage.Config{APIKey: "test-voyage-key", BaseURL: ts.URL})
		_, err := noType.Embed(context.Background(), []string{"Hello"})
		if err == nil || !strings.Contains(err.Error(), "missing input_type") {
			t.Fatalf("expected API error message, got %v", err)
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := voyage.New(voyage.Config{APIKey: "bad-key", BaseURL: ts.URL})
		_, err := badClient.Embed(context.Background(), []string{"Hello world"})
		if err == nil || !strings.Contains(err.Error(), "401") {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		if _, err := voyage.New(voyage.Config{}); err == nil {
			t.Fatalf("expected validation error")
		}
	})
}
