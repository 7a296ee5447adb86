package http

import (
	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
)

// RegisterRoutes maps the recurring template endpoints under the API group.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := api.Group("/recurring", mw.Auth())
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.DELETE("/:id", h.Delete)
		g.POST("/apply/:date", h.Apply)
	}
}
