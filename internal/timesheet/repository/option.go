package repository

import "time"

// GetOneCustomerOptions holds filter parameters for fetching a single
// Customer. Lookup is by exact name.
type GetOneCustomerOptions struct {
	ID   int64
	Name string
}

// CreateCustomerOptions holds parameters for inserting a new Customer.
type CreateCustomerOptions struct {
	Name     string
	Country  string
	Currency string
	Visible  bool
}

// GetOneProjectOptions holds filter parameters for fetching a single
// Project. Name lookups are scoped by the owning customer.
type GetOneProjectOptions struct {
	ID         int64
	Name       string
	CustomerID int64
}

// CreateProjectOptions holds parameters for inserting a new Project.
type CreateProjectOptions struct {
	Name       string
	CustomerID int64
	Visible    bool
}

// GetOneActivityOptions holds filter parameters for fetching a single
// Activity.
type GetOneActivityOptions struct {
	ID   int64
	Name string
}

// CreateActivityOptions holds parameters for inserting a new Activity.
type CreateActivityOptions struct {
	Name    string
	Visible bool
}

// CreateTimesheetOptions holds parameters for inserting one timesheet
// record as part of a batch.
type CreateTimesheetOptions struct {
	UserID      string
	ProjectID   int64
	ActivityID  int64
	Description string
	Begin       time.Time
	End         time.Time
	HourlyRate  *float64
}
