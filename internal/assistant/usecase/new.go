package usecase

import (
	"context"
	"time"

	"timelog-assistant/config"
	"timelog-assistant/internal/settings"
	"timelog-assistant/internal/timesheet/repository"
	"timelog-assistant/pkg/gcalendar"
	"timelog-assistant/pkg/log"
	"timelog-assistant/pkg/openai"
)

// CalendarClient mirrors submitted timesheets into an external calendar.
// Optional: a nil client disables mirroring.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	cfg      *config.Config
	repo     repository.Repository
	settings settings.UseCase
	llm      *openai.Client
	cal      CalendarClient
	tz       *time.Location
	l        log.Logger
}

// New creates a new assistant UseCase implementation. cal may be nil.
func New(cfg *config.Config, repo repository.Repository, st settings.UseCase, llm *openai.Client, cal CalendarClient, l log.Logger) *implUseCase {
	tz, err := time.LoadLocation(cfg.Assistant.Timezone)
	if err != nil {
		tz = time.UTC
	}
	return &implUseCase{
		cfg:      cfg,
		repo:     repo,
		settings: st,
		llm:      llm,
		cal:      cal,
		tz:       tz,
		l:        l,
	}
}

// apiKey loads the stored credential. Empty key means the assistant is not
// configured; the caller must fail before any network call.
func (uc *implUseCase) apiKey(ctx context.Context) (string, error) {
	key, err := uc.settings.APIKey(ctx)
	if err != nil {
		return "", err
	}
	return key, nil
}
