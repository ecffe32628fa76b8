package http

import (
	"timelog-assistant/internal/settings"
	"timelog-assistant/pkg/log"
)

// Handler is the public interface for the settings HTTP delivery layer.
type Handler interface {
	Get(c interface{})
	Update(c interface{})
}

type handler struct {
	l  log.Logger
	uc settings.UseCase
}

// New creates a new HTTP handler for the settings domain.
func New(l log.Logger, uc settings.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
