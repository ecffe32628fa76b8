package repository

import "context"

//go:generate mockery --name Repository
type Repository interface {
	// Get returns the stored value for name, or "" with nil error when the
	// name has never been set.
	Get(ctx context.Context, name string) (string, error)
	// Set stores value under name, overwriting any previous value.
	Set(ctx context.Context, name, value string) error
}
