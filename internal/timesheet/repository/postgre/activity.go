package postgre

import (
	"context"
	"database/sql"

	"timelog-assistant/internal/model"
	repo "timelog-assistant/internal/timesheet/repository"
)

// GetOneActivity retrieves a single Activity by name. Returns zero-value
// Activity when not found.
func (r *implRepository) GetOneActivity(ctx context.Context, opt repo.GetOneActivityOptions) (model.Activity, error) {
	const query = `SELECT id, name, visible FROM activities WHERE name = $1 LIMIT 1`

	var a model.Activity
	err := r.db.QueryRowContext(ctx, query, opt.Name).Scan(&a.ID, &a.Name, &a.Visible)
	if err == sql.ErrNoRows {
		return model.Activity{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneActivity"), err)
		return model.Activity{}, repo.ErrFailedToGet
	}
	return a, nil
}

// CreateActivity inserts a new Activity row and returns the created entity.
func (r *implRepository) CreateActivity(ctx context.Context, opt repo.CreateActivityOptions) (model.Activity, error) {
	const query = `
		INSERT INTO activities (name, visible)
		VALUES ($1, $2)
		RETURNING id, name, visible`

	var a model.Activity
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Visible).Scan(&a.ID, &a.Name, &a.Visible)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateActivity"), err)
		return model.Activity{}, repo.ErrFailedToInsert
	}
	return a, nil
}
