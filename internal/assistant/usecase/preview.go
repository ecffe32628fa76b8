package usecase

import (
	"context"
	"strings"

	"timelog-assistant/internal/assistant"
	"timelog-assistant/internal/model"
	"timelog-assistant/internal/timesheet/repository"
)

// Preview resolves and prices entries for display. It only performs lookups:
// unknown customers, projects and activities are shown under the names they
// would be created with, but nothing is written.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, entries []assistant.RawEntry) ([]assistant.PreviewRow, error) {
	if len(entries) == 0 {
		return nil, assistant.ErrNoEntries
	}

	rows := make([]assistant.PreviewRow, 0, len(entries))
	for _, raw := range entries {
		client := strings.TrimSpace(raw.Client)
		if client == "" {
			client = defaultCustomerName
		}

		cust, err := uc.repo.GetOneCustomer(ctx, repository.GetOneCustomerOptions{Name: client})
		if err != nil {
			uc.l.Errorf(ctx, "assistant/usecase.Preview customer: %v", err)
			return nil, assistant.ErrFailedToResolve
		}

		ne, err := uc.normalizeEntry(ctx, raw, cust.ID)
		if err != nil {
			return nil, err
		}

		minutes := ne.DurationMinutes()
		rows = append(rows, assistant.PreviewRow{
			Date:         ne.Date,
			CustomerName: ne.Client,
			ProjectName:  ne.Project,
			ActivityName: defaultActivityName,
			Description:  ne.Description,
			Begin:        ne.Begin,
			End:          ne.End,
			Duration:     minutes,
			Billable:     ne.Billable,
			Rate:         ne.Rate,
			Total:        entryTotal(minutes, ne.Rate),
		})
	}
	return rows, nil
}
