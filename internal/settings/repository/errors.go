package repository

import "errors"

var (
	ErrFailedToGet = errors.New("failed to get configuration value")
	ErrFailedToSet = errors.New("failed to set configuration value")
)
