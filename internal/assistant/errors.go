package assistant

import "errors"

var (
	// ErrNotConfigured means no API key is stored. Callers must be pointed
	// at the settings screen; no network call is made.
	ErrNotConfigured = errors.New("no API key configured")

	// ErrMalformedResponse means the model reply could not be parsed as a
	// JSON entry array. Wrapped with the underlying parse error.
	ErrMalformedResponse = errors.New("model response is not valid JSON")

	ErrEmptyMessage = errors.New("message is required")
	ErrEmptyTimelog = errors.New("timelog text is required")
	ErrNoEntries    = errors.New("no entries provided")
	ErrInvalidEntry = errors.New("entry has an invalid time range")

	ErrFailedToResolve = errors.New("failed to resolve timesheet references")
	ErrFailedToSave    = errors.New("failed to save timesheets")
)
