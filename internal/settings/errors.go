package settings

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load settings")
	ErrFailedToSave = errors.New("failed to save settings")
)
