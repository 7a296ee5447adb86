package http

import (
	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
)

// RegisterRoutes maps the journal endpoints under the API group.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := api.Group("/journal/:date", mw.Auth())
	{
		g.GET("", h.GetDay)
		g.POST("/habits/:name/toggle", h.ToggleHabit)
		g.PUT("/reflection", h.SaveReflection)
	}
}
