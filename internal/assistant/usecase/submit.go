package usecase

import (
	"context"
	"fmt"

	"timelog-assistant/internal/assistant"
	"timelog-assistant/internal/model"
	"timelog-assistant/internal/timesheet/repository"
	"timelog-assistant/pkg/gcalendar"
)

// Submit materializes entries into timesheet records. Referenced customers,
// projects and the default activity are found or created (each create
// commits individually); the records themselves are persisted in one
// all-or-nothing batch.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, entries []assistant.RawEntry) (assistant.SubmitOutput, error) {
	if len(entries) == 0 {
		return assistant.SubmitOutput{}, assistant.ErrNoEntries
	}

	opts := make([]repository.CreateTimesheetOptions, 0, len(entries))
	normalized := make([]assistant.NormalizedEntry, 0, len(entries))
	for _, raw := range entries {
		client := raw.Client
		if client == "" {
			client = defaultCustomerName
		}

		cust, err := uc.findOrCreateCustomer(ctx, client)
		if err != nil {
			uc.l.Errorf(ctx, "assistant/usecase.Submit customer: %v", err)
			return assistant.SubmitOutput{}, assistant.ErrFailedToResolve
		}

		ne, err := uc.normalizeEntry(ctx, raw, cust.ID)
		if err != nil {
			return assistant.SubmitOutput{}, err
		}

		proj, err := uc.findOrCreateProject(ctx, ne.Project, cust.ID)
		if err != nil {
			uc.l.Errorf(ctx, "assistant/usecase.Submit project: %v", err)
			return assistant.SubmitOutput{}, assistant.ErrFailedToResolve
		}

		act, err := uc.findOrCreateActivity(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "assistant/usecase.Submit activity: %v", err)
			return assistant.SubmitOutput{}, assistant.ErrFailedToResolve
		}

		// Rate is only recorded for billable entries.
		var rate *float64
		if ne.Billable && ne.Rate > 0 {
			r := ne.Rate
			rate = &r
		}

		opts = append(opts, repository.CreateTimesheetOptions{
			UserID:      sc.UserID,
			ProjectID:   proj.ID,
			ActivityID:  act.ID,
			Description: ne.Description,
			Begin:       ne.Begin,
			End:         ne.End,
			HourlyRate:  rate,
		})
		normalized = append(normalized, ne)
	}

	created, err := uc.repo.CreateTimesheetsBatch(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.Submit batch: %v", err)
		return assistant.SubmitOutput{}, assistant.ErrFailedToSave
	}

	for _, ne := range normalized {
		uc.tryCreateCalendarEvent(ctx, ne)
	}

	return assistant.SubmitOutput{CreatedCount: len(created)}, nil
}

// tryCreateCalendarEvent mirrors one entry into the configured calendar.
// Mirroring is best-effort: failures are logged and never fail the submit.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, ne assistant.NormalizedEntry) {
	if uc.cal == nil {
		return
	}
	_, err := uc.cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.GoogleCalendar.CalendarID,
		Summary:     fmt.Sprintf("%s: %s", ne.Project, ne.Description),
		Description: fmt.Sprintf("Client: %s", ne.Client),
		StartTime:   ne.Begin,
		EndTime:     ne.End,
		Timezone:    uc.cfg.Assistant.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "assistant/usecase.tryCreateCalendarEvent: %v", err)
	}
}
