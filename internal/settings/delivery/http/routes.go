package http

import (
	"timelog-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	st := rg.Group("/assistant/settings")
	{
		st.GET("", mw.Identity(), h.Get)
		st.PUT("", mw.Identity(), h.Update)
	}
}
