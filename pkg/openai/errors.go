package openai

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey is returned when ChatCompletion is called without a key.
// Callers are expected to check configuration first; this is the backstop.
var ErrNoAPIKey = errors.New("openai: API key is empty")

// unknownErrorMessage is used when the provider returns no structured error.
const unknownErrorMessage = "Unknown error"

// APIError is a non-success response from the provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenAI API error: %s (status %d)", e.Message, e.StatusCode)
}
