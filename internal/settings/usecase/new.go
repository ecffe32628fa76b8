package usecase

import (
	"timelog-assistant/internal/settings/repository"
	"timelog-assistant/pkg/log"
)

// implUseCase is the private implementation of settings.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new settings UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
