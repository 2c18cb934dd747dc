package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientComplete(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "the answer"}},
			},
		})
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, APIKey: "test-key", Model: "gpt-3.5-turbo"}
	got, err := c.Complete(context.Background(), "a prompt")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != "the answer" {
		t.Errorf("unexpected completion: %q", got)
	}
	if gotReq.Model != "gpt-3.5-turbo" {
		t.Errorf("unexpected model: %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Content != "a prompt" {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestClientCompleteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limit exceeded"},
		})
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, Model: "gpt-3.5-turbo"}
	if _, err := c.Complete(context.Background(), "a prompt"); err == nil {
		t.Fatal("expected error from API error payload")
	}
}

func TestClientCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, Model: "gpt-3.5-turbo"}
	if _, err := c.Complete(context.Background(), "a prompt"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestClientCompleteMissingConfig(t *testing.T) {
	c := &Client{}
	if _, err := c.Complete(context.Background(), "a prompt"); err == nil {
		t.Fatal("expected error when base URL and model unset")
	}
}
