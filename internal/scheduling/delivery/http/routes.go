package http

import (
	"github.com/gin-gonic/gin"

	"later-reminder/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	schedule := rg.Group("/schedule")
	{
		schedule.POST("/plan", mw.RateLimit(), h.Plan)
		schedule.POST("/apply", mw.RateLimit(), h.Apply)
	}
}
