package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"timelog-assistant/internal/assistant"
	"timelog-assistant/internal/assistant/usecase"
	"timelog-assistant/pkg/openai"
)

func TestChat(t *testing.T) {
	t.Run("returns content and usage from the provider", func(t *testing.T) {
		llm, _ := newLLMClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": "You logged 8 hours today."}},
				},
				"usage": map[string]any{"total_tokens": float64(42)},
			})
		})
		uc := usecase.New(testConfig(), newMockRepo(), &mockSettings{key: "sk-test"}, llm, nil, &mockLogger{})

		out, err := uc.Chat(context.Background(), testScope, assistant.ChatInput{Message: "How much did I work?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Content != "You logged 8 hours today." {
			t.Errorf("unexpected content %q", out.Content)
		}
		if out.Usage["total_tokens"] != float64(42) {
			t.Errorf("unexpected usage %v", out.Usage)
		}
	})

	t.Run("fails without an API key and makes no network call", func(t *testing.T) {
		llm, calls := newLLMClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected network call")
		})
		uc := usecase.New(testConfig(), newMockRepo(), &mockSettings{key: ""}, llm, nil, &mockLogger{})

		_, err := uc.Chat(context.Background(), testScope, assistant.ChatInput{Message: "hello"})
		if err != assistant.ErrNotConfigured {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
		if calls.Load() != 0 {
			t.Errorf("expected 0 calls, got %d", calls.Load())
		}
	})

	t.Run("rejects an empty message before anything else", func(t *testing.T) {
		uc := usecase.New(testConfig(), newMockRepo(), &mockSettings{key: "sk-test"}, nil, nil, &mockLogger{})

		_, err := uc.Chat(context.Background(), testScope, assistant.ChatInput{Message: "   "})
		if err != assistant.ErrEmptyMessage {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("surfaces the provider error with its message", func(t *testing.T) {
		llm, _ := newLLMClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "Incorrect API key provided"},
			})
		})
		uc := usecase.New(testConfig(), newMockRepo(), &mockSettings{key: "sk-bad"}, llm, nil, &mockLogger{})

		_, err := uc.Chat(context.Background(), testScope, assistant.ChatInput{Message: "hello"})
		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *openai.APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "Incorrect API key provided" {
			t.Errorf("unexpected provider error %+v", apiErr)
		}
	})
}
