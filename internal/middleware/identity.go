package middleware

import (
	"github.com/gin-gonic/gin"

	"timelog-assistant/internal/model"
	"timelog-assistant/pkg/response"
)

const scopeKey = "scope"

// Identity resolves the request identity from the headers set by the host
// application's reverse proxy. Authentication itself belongs to the host;
// requests without a user id are rejected.
func (m Middleware) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:      userID,
			DisplayName: c.GetHeader("X-User-Name"),
		})
		c.Next()
	}
}

// GetScope returns the identity stored by Identity.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
