package postgre

import (
	"context"
	"database/sql"

	"timelog-assistant/internal/settings/repository"
)

// Get returns the stored value for name, "" with nil error when unset.
func (r *implRepository) Get(ctx context.Context, name string) (string, error) {
	const query = `SELECT value FROM app_configuration WHERE name = $1`

	var value string
	err := r.db.QueryRowContext(ctx, query, name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "settings/repository/postgre.Get: %v", err)
		return "", repository.ErrFailedToGet
	}
	return value, nil
}

// Set upserts the value under name.
func (r *implRepository) Set(ctx context.Context, name, value string) error {
	const query = `
		INSERT INTO app_configuration (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`

	if _, err := r.db.ExecContext(ctx, query, name, value); err != nil {
		r.l.Errorf(ctx, "settings/repository/postgre.Set: %v", err)
		return repository.ErrFailedToSet
	}
	return nil
}
