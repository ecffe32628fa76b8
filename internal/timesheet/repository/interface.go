package repository

import (
	"context"

	"timelog-assistant/internal/model"
)

// Repository is the composed interface for the timesheet data store.
type Repository interface {
	CustomerRepository
	ProjectRepository
	ActivityRepository
	TimesheetRepository
}

// CustomerRepository defines data access for the Customer entity.
// GetOne* methods return the zero value with nil error when not found.
type CustomerRepository interface {
	GetOneCustomer(ctx context.Context, opt GetOneCustomerOptions) (model.Customer, error)
	// CreateCustomer commits immediately so the id is usable by a
	// subsequent project create within the same request.
	CreateCustomer(ctx context.Context, opt CreateCustomerOptions) (model.Customer, error)
}

// ProjectRepository defines data access for the Project entity.
type ProjectRepository interface {
	GetOneProject(ctx context.Context, opt GetOneProjectOptions) (model.Project, error)
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
}

// ActivityRepository defines data access for the Activity entity.
type ActivityRepository interface {
	GetOneActivity(ctx context.Context, opt GetOneActivityOptions) (model.Activity, error)
	CreateActivity(ctx context.Context, opt CreateActivityOptions) (model.Activity, error)
}

// TimesheetRepository persists timesheet records.
type TimesheetRepository interface {
	// CreateTimesheetsBatch inserts all records inside a single
	// transaction: on any failure the whole batch rolls back and the
	// error is returned.
	CreateTimesheetsBatch(ctx context.Context, opts []CreateTimesheetOptions) ([]model.Timesheet, error)
}
