package http

import (
	"timelog-assistant/internal/settings"
	pkgErrors "timelog-assistant/pkg/errors"
)

// mapError translates settings use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case settings.ErrFailedToLoad, settings.ErrFailedToSave:
		return pkgErrors.NewHTTPError(500, "storage failure")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
