package http

import (
	"timelog-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// requires a resolved identity and counts against the per-user rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	as := rg.Group("/assistant")
	{
		as.POST("/chat", mw.Identity(), mw.RateLimit(), h.Chat)
		as.POST("/parse", mw.Identity(), mw.RateLimit(), h.Parse)
		as.POST("/preview", mw.Identity(), mw.RateLimit(), h.Preview)
		as.POST("/submit", mw.Identity(), mw.RateLimit(), h.Submit)
	}
}
