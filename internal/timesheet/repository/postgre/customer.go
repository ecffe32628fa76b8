package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"timelog-assistant/internal/model"
	repo "timelog-assistant/internal/timesheet/repository"
)

// GetOneCustomer retrieves a single Customer by the provided filters (AND
// condition). Returns zero-value Customer (ID == 0) when not found, without
// an error.
func (r *implRepository) GetOneCustomer(ctx context.Context, opt repo.GetOneCustomerOptions) (model.Customer, error) {
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
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(
		`SELECT id, name, country, currency, visible FROM customers WHERE %s LIMIT 1`, where)

	var c model.Customer
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.Name, &c.Country, &c.Currency, &c.Visible,
	)
	if err == sql.ErrNoRows {
		return model.Customer{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCustomer"), err)
		return model.Customer{}, repo.ErrFailedToGet
	}
	return c, nil
}

// CreateCustomer inserts a new Customer row and returns the created entity.
// The insert autocommits, so the id is durable before the caller proceeds.
func (r *implRepository) CreateCustomer(ctx context.Context, opt repo.CreateCustomerOptions) (model.Customer, error) {
	const query = `
		INSERT INTO customers (name, country, currency, visible)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, country, currency, visible`

	var c model.Customer
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Country, opt.Currency, opt.Visible).Scan(
		&c.ID, &c.Name, &c.Country, &c.Currency, &c.Visible,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCustomer"), err)
		return model.Customer{}, repo.ErrFailedToInsert
	}
	return c, nil
}
