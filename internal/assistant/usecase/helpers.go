package usecase

import (
	"context"
	"math"

	"timelog-assistant/internal/model"
	"timelog-assistant/internal/timesheet/repository"
)

const (
	defaultCustomerName = "Unknown Client"
	defaultActivityName = "Work"
	defaultCountry      = "US"
	defaultCurrency     = "USD"
)

// findOrCreateCustomer looks up a customer by exact name and creates it with
// defaults on miss. The create commits individually so the id is durable
// before any project referencing it is created. Concurrent callers racing on
// the same name can produce duplicates; see DESIGN.md.
func (uc *implUseCase) findOrCreateCustomer(ctx context.Context, name string) (model.Customer, error) {
	c, err := uc.repo.GetOneCustomer(ctx, repository.GetOneCustomerOptions{Name: name})
	if err != nil {
		return model.Customer{}, err
	}
	if c.ID != 0 {
		return c, nil
	}
	return uc.repo.CreateCustomer(ctx, repository.CreateCustomerOptions{
		Name:     name,
		Country:  defaultCountry,
		Currency: defaultCurrency,
		Visible:  true,
	})
}

func (uc *implUseCase) findOrCreateProject(ctx context.Context, name string, customerID int64) (model.Project, error) {
	p, err := uc.repo.GetOneProject(ctx, repository.GetOneProjectOptions{Name: name, CustomerID: customerID})
	if err != nil {
		return model.Project{}, err
	}
	if p.ID != 0 {
		return p, nil
	}
	return uc.repo.CreateProject(ctx, repository.CreateProjectOptions{
		Name:       name,
		CustomerID: customerID,
		Visible:    true,
	})
}

func (uc *implUseCase) findOrCreateActivity(ctx context.Context) (model.Activity, error) {
	a, err := uc.repo.GetOneActivity(ctx, repository.GetOneActivityOptions{Name: defaultActivityName})
	if err != nil {
		return model.Activity{}, err
	}
	if a.ID != 0 {
		return a, nil
	}
	return uc.repo.CreateActivity(ctx, repository.CreateActivityOptions{
		Name:    defaultActivityName,
		Visible: true,
	})
}

// entryTotal prices a span: round(minutes/60 * rate, 2).
func entryTotal(minutes int, rate float64) float64 {
	return math.Round(float64(minutes)/60*rate*100) / 100
}
