package glm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompleteSendsChatCompletionRequest(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: ts.URL, Model: "glm-4.5"}, testLogger())
	got, err := c.Complete(context.Background(), "review this")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("content = %q", got)
	}

	if gotPath != "/chat/completions" {
		t.Errorf("path = %q, want /chat/completions", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotBody["model"] != "glm-4.5" {
		t.Errorf("model = %v", gotBody["model"])
	}
	if rf, ok := gotBody["response_format"].(map[string]any); !ok || rf["type"] != "json_object" {
		t.Errorf("response_format = %v, want json_object mode", gotBody["response_format"])
	}
	msgs, ok := gotBody["messages"].([]any)
	if !ok || len(msgs) != 1 {
		t.Fatalf("messages = %v, want a single user message", gotBody["messages"])
	}
	msg := msgs[0].(map[string]any)
	if msg["role"] != "user" || msg["content"] != "review this" {
		t.Errorf("message = %v", msg)
	}
}

func TestCompleteProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: ts.URL}, testLogger())
	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected an error for a non-2xx provider response")
	}
}

func TestCompleteNoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: ts.URL}, testLogger())
	_, err := c.Complete(context.Background(), "p")
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Errorf("error = %v, want a no-choices failure", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil)
	if c.cfg.Model != "glm-4.5" {
		t.Errorf("Model = %q", c.cfg.Model)
	}
	if c.cfg.BaseURL == "" {
		t.Error("BaseURL default missing")
	}
	if c.cfg.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", c.cfg.Temperature)
	}
	if c.cfg.MaxTokens != 2000 {
		t.Errorf("MaxTokens = %d, want 2000", c.cfg.MaxTokens)
	}
}
