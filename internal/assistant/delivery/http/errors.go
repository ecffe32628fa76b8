package http

import (
	"errors"

	"timelog-assistant/internal/assistant"
	pkgErrors "timelog-assistant/pkg/errors"
	"timelog-assistant/pkg/openai"
)

// mapError translates assistant use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return pkgErrors.NewHTTPError(502, apiErr.Message)
	}

	switch {
	case errors.Is(err, assistant.ErrNotConfigured):
		return pkgErrors.NewHTTPError(400, "AI assistant is not configured. Please set an OpenAI API key in the settings.")
	case errors.Is(err, assistant.ErrMalformedResponse):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, assistant.ErrEmptyTimelog),
		errors.Is(err, assistant.ErrNoEntries),
		errors.Is(err, assistant.ErrInvalidEntry):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, assistant.ErrFailedToResolve),
		errors.Is(err, assistant.ErrFailedToSave):
		return pkgErrors.NewHTTPError(500, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
