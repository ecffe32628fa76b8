package openai_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"timelog-assistant/pkg/log"
	"timelog-assistant/pkg/openai"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var _ log.Logger = (*mockLogger)(nil)

func newTestClient(serverURL string) *openai.Client {
	c := openai.NewClient(openai.Config{Model: "gpt-4"}, &mockLogger{})
	c.SetAPIURL(serverURL)
	return c
}

func TestChatCompletion(t *testing.T) {
	t.Run("Success extracts content and usage", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
				t.Errorf("unexpected auth header %q", got)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"choices": [{"message": {"content": "Hello! How can I help?"}}],
				"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
			}`))
		}))
		defer ts.Close()

		c := newTestClient(ts.URL)
		out, err := c.ChatCompletion(context.Background(), "sk-test", openai.ChatRequest{
			SystemPrompt: "system",
			UserText:     "hi",
			Temperature:  0.7,
			MaxTokens:    2000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Content != "Hello! How can I help?" {
			t.Errorf("unexpected content %q", out.Content)
		}
		if out.Usage["total_tokens"] != float64(15) {
			t.Errorf("unexpected usage: %v", out.Usage)
		}
	})

	t.Run("Missing choices and usage degrade to empty", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		}))
		defer ts.Close()

		c := newTestClient(ts.URL)
		out, err := c.ChatCompletion(context.Background(), "sk-test", openai.ChatRequest{UserText: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Content != "" {
			t.Errorf("expected empty content, got %q", out.Content)
		}
		if out.Usage == nil || len(out.Usage) != 0 {
			t.Errorf("expected empty usage map, got %v", out.Usage)
		}
	})

	t.Run("Provider error with structured body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "Incorrect API key provided"}}`))
		}))
		defer ts.Close()

		c := newTestClient(ts.URL)
		_, err := c.ChatCompletion(context.Background(), "sk-bad", openai.ChatRequest{UserText: "hi"})

		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", apiErr.StatusCode)
		}
		if apiErr.Message != "Incorrect API key provided" {
			t.Errorf("expected upstream message, got %q", apiErr.Message)
		}
	})

	t.Run("Provider error without structured body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`gateway exploded`))
		}))
		defer ts.Close()

		c := newTestClient(ts.URL)
		_, err := c.ChatCompletion(context.Background(), "sk-test", openai.ChatRequest{UserText: "hi"})

		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.Message != "Unknown error" {
			t.Errorf("expected fallback message, got %q", apiErr.Message)
		}
	})

	t.Run("Empty API key fails before any network call", func(t *testing.T) {
		called := false
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer ts.Close()

		c := newTestClient(ts.URL)
		_, err := c.ChatCompletion(context.Background(), "", openai.ChatRequest{UserText: "hi"})
		if !errors.Is(err, openai.ErrNoAPIKey) {
			t.Fatalf("expected ErrNoAPIKey, got %v", err)
		}
		if called {
			t.Error("expected no network call for empty key")
		}
	})
}

func TestBuildTimelogUserText(t *testing.T) {
	now := time.Date(2025, 7, 24, 10, 0, 0, 0, time.UTC)
	got := openai.BuildTimelogUserText(now, "9:00 - 10:00 - Shed")
	if !strings.HasPrefix(got, "Current date: 2025-07-24 (Year: 2025)") {
		t.Errorf("missing date context prefix: %q", got)
	}
	if !strings.Contains(got, "9:00 - 10:00 - Shed") {
		t.Errorf("missing raw timelog: %q", got)
	}
}

func TestBuildChatSystemPrompt(t *testing.T) {
	got := openai.BuildChatSystemPrompt(map[string]string{
		"user":         "Jane",
		"current_date": "2025-07-24",
	})
	if !strings.Contains(got, "- user: Jane") {
		t.Errorf("missing user context line: %q", got)
	}
	if !strings.Contains(got, "- current_date: 2025-07-24") {
		t.Errorf("missing date context line: %q", got)
	}

	empty := openai.BuildChatSystemPrompt(nil)
	if strings.Contains(empty, "Context about the current user") {
		t.Errorf("context header should be absent without context: %q", empty)
	}
}
