package model

import "time"

// Customer is a billing client. Created lazily with defaults when a parsed
// entry references an unknown client name.
type Customer struct {
	ID       int64
	Name     string
	Country  string
	Currency string
	Visible  bool
}

// Project belongs to exactly one customer. Project names are unique only
// within their customer.
type Project struct {
	ID         int64
	CustomerID int64
	Name       string
	Visible    bool
}

// Activity is the kind of work performed. The assistant files everything
// under a single default activity.
type Activity struct {
	ID      int64
	Name    string
	Visible bool
}

// Timesheet is one logged span of work. It only becomes durable after the
// batch commit.
type Timesheet struct {
	ID          int64
	UserID      string
	ProjectID   int64
	ActivityID  int64
	Description string
	Begin       time.Time
	End         time.Time
	HourlyRate  *float64 // nil when the entry is not billable
}
