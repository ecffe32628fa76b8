package openai

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the provider-agnostic completion request.
type ChatRequest struct {
	SystemPrompt string
	UserText     string
	Temperature  float64
	MaxTokens    int
}

// ChatResult is the extracted completion.
type ChatResult struct {
	Content string
	Usage   map[string]any
}

// chatCompletionRequest is the wire request body for /chat/completions.
type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// chatCompletionResponse is the wire response body for /chat/completions.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage map[string]any `json:"usage"`
}

// errorResponse is the provider's structured error body.
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
