package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "timelog-assistant/internal/assistant/delivery/http"
	assistantUC "timelog-assistant/internal/assistant/usecase"
	"timelog-assistant/internal/middleware"
	settingsHTTP "timelog-assistant/internal/settings/delivery/http"
	settingsRepo "timelog-assistant/internal/settings/repository/postgre"
	settingsUC "timelog-assistant/internal/settings/usecase"
	timesheetRepo "timelog-assistant/internal/timesheet/repository/postgre"
)

// setupAssistantDomain initializes the settings and assistant domains and
// registers their routes.
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Settings: credential store + admin surface.
	stRepo := settingsRepo.New(srv.postgresDB, srv.l)
	stUC := settingsUC.New(stRepo, srv.l)
	stHandler := settingsHTTP.New(srv.l, stUC)
	settingsHTTP.RegisterRoutes(api, stHandler, mw)

	// Assistant: chat, parse, preview, submit.
	tsRepo := timesheetRepo.New(srv.postgresDB, srv.l)
	asUC := assistantUC.New(srv.cfg, tsRepo, stUC, srv.llm, srv.calendar, srv.l)
	asHandler := assistantHTTP.New(srv.l, asUC)
	assistantHTTP.RegisterRoutes(api, asHandler, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
