package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"timelog-assistant/internal/model"
	repo "timelog-assistant/internal/timesheet/repository"
)

// GetOneProject retrieves a single Project by the provided filters (AND
// condition). Name lookups must include CustomerID since project names are
// only unique per customer. Returns zero-value Project when not found.
func (r *implRepository) GetOneProject(ctx context.Context, opt repo.GetOneProjectOptions) (model.Project, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name = $%d", idx))
		args = append(args, opt.Name)
		idx++
	}
	if opt.CustomerID != 0 {
		conditions = append(conditions, fmt.Sprintf("customer_id = $%d", idx))
		args = append(args, opt.CustomerID)
		idx++
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(
		`SELECT id, customer_id, name, visible FROM projects WHERE %s LIMIT 1`, where)

	var p model.Project
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.CustomerID, &p.Name, &p.Visible,
	)
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProject"), err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return p, nil
}

// CreateProject inserts a new Project row and returns the created entity.
func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	const query = `
		INSERT INTO projects (customer_id, name, visible)
		VALUES ($1, $2, $3)
		RETURNING id, customer_id, name, visible`

	var p model.Project
	err := r.db.QueryRowContext(ctx, query, opt.CustomerID, opt.Name, opt.Visible).Scan(
		&p.ID, &p.CustomerID, &p.Name, &p.Visible,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return model.Project{}, repo.ErrFailedToInsert
	}
	return p, nil
}
