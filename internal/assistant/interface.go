package assistant

import (
	"context"

	"timelog-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat sends a free-form message to the model with optional user context.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
	// ParseTimelog turns free-form time-log text into raw entries via the model.
	ParseTimelog(ctx context.Context, sc model.Scope, timelog string) ([]RawEntry, error)
	// Preview resolves and prices entries for display without persisting anything.
	Preview(ctx context.Context, sc model.Scope, entries []RawEntry) ([]PreviewRow, error)
	// Submit materializes entries into timesheet records in one all-or-nothing batch.
	Submit(ctx context.Context, sc model.Scope, entries []RawEntry) (SubmitOutput, error)
}
