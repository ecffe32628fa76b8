package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"timelog-assistant/pkg/log"
)

const (
	defaultAPIURL = "https://api.openai.com/v1"
	defaultModel  = "gpt-4"
)

// Config for the OpenAI client. The API key is deliberately NOT part of the
// config: it lives in the host application's configuration store and is
// passed per call, so key rotation takes effect without a restart.
type Config struct {
	APIURL  string
	Model   string
	Timeout time.Duration
}

// Client is the OpenAI chat-completions API client.
type Client struct {
	apiURL     string
	model      string
	httpClient *http.Client
	l          log.Logger
}

// NewClient creates a new OpenAI API client.
func NewClient(cfg Config, l log.Logger) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		l:          l,
	}
}

// SetAPIURL overrides the API base URL. Used by tests.
func (c *Client) SetAPIURL(u string) {
	c.apiURL = strings.TrimRight(u, "/")
}

// ChatCompletion sends a system prompt plus user text to /chat/completions
// and returns the first choice's content and the usage map. A non-success
// status yields *APIError carrying the provider's error.message when
// present. The call is attempted exactly once; no retries.
func (c *Client) ChatCompletion(ctx context.Context, apiKey string, req ChatRequest) (ChatResult, error) {
	if apiKey == "" {
		return ChatResult{}, ErrNoAPIKey
	}

	rid := uuid.New().String()
	start := time.Now()
	c.l.Debugf(ctx, "openai.chat.start req_id=%s model=%s temp=%.2f user_len=%d",
		rid, c.model, req.Temperature, len(req.UserText))

	body := chatCompletionRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserText},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return ChatResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat/completions", bytes.NewReader(raw))
	if err != nil {
		return ChatResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.l.Errorf(ctx, "openai.chat.http_error req_id=%s: %v", rid, err)
		return ChatResult{}, fmt.Errorf("failed to call openai API: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChatResult{}, fmt.Errorf("failed to read openai response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: unknownErrorMessage}
		var eb errorResponse
		if jsonErr := json.Unmarshal(payload, &eb); jsonErr == nil && eb.Error.Message != "" {
			apiErr.Message = eb.Error.Message
		}
		c.l.Warnf(ctx, "openai.chat.api_error req_id=%s status=%d msg=%q elapsed_ms=%d",
			rid, resp.StatusCode, apiErr.Message, time.Since(start).Milliseconds())
		return ChatResult{}, apiErr
	}

	var cc chatCompletionResponse
	if err := json.Unmarshal(payload, &cc); err != nil {
		return ChatResult{}, fmt.Errorf("failed to decode openai response: %w", err)
	}

	// Missing fields degrade to empty values rather than failing.
	result := ChatResult{Usage: cc.Usage}
	if result.Usage == nil {
		result.Usage = map[string]any{}
	}
	if len(cc.Choices) > 0 {
		result.Content = cc.Choices[0].Message.Content
	}

	c.l.Debugf(ctx, "openai.chat.ok req_id=%s content_len=%d elapsed_ms=%d",
		rid, len(result.Content), time.Since(start).Milliseconds())
	return result, nil
}
