package postgre

import (
	"context"

	"timelog-assistant/internal/model"
	repo "timelog-assistant/internal/timesheet/repository"
)

// CreateTimesheetsBatch inserts all records inside one transaction.
// Any failure rolls back the whole batch; either every record becomes
// durable or none do.
func (r *implRepository) CreateTimesheetsBatch(ctx context.Context, opts []repo.CreateTimesheetOptions) ([]model.Timesheet, error) {
	const query = `
		INSERT INTO timesheets (user_id, project_id, activity_id, description, begin_at, end_at, hourly_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateTimesheetsBatch"), err)
		return nil, repo.ErrFailedToCommit
	}

	created := make([]model.Timesheet, 0, len(opts))
	for _, opt := range opts {
		ts := model.Timesheet{
			UserID:      opt.UserID,
			ProjectID:   opt.ProjectID,
			ActivityID:  opt.ActivityID,
			Description: opt.Description,
			Begin:       opt.Begin,
			End:         opt.End,
			HourlyRate:  opt.HourlyRate,
		}
		err := tx.QueryRowContext(ctx, query,
			opt.UserID, opt.ProjectID, opt.ActivityID, opt.Description, opt.Begin, opt.End, opt.HourlyRate,
		).Scan(&ts.ID)
		if err != nil {
			r.l.Errorf(ctx, "%s insert: %v", r.dsn("CreateTimesheetsBatch"), err)
			if rbErr := tx.Rollback(); rbErr != nil {
				r.l.Errorf(ctx, "%s rollback: %v", r.dsn("CreateTimesheetsBatch"), rbErr)
			}
			return nil, repo.ErrFailedToInsert
		}
		created = append(created, ts)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateTimesheetsBatch"), err)
		return nil, repo.ErrFailedToCommit
	}
	return created, nil
}
