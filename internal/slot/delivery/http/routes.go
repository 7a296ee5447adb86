package http

import (
	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods under the API group.
// All routes are behind the session gate.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	auth := mw.Auth()

	api.POST("/slots", auth, h.Create)
	api.POST("/parse", auth, h.Parse)
	api.DELETE("/tasks/:id", auth, h.DeleteTask)

	days := api.Group("/days")
	{
		days.GET("/:date", auth, h.Day)
		days.PATCH("/:date/slots/:index", auth, h.SetStatus)
		days.DELETE("/:date/slots/:index", auth, h.Delete)
	}

	summary := api.Group("/summary")
	{
		summary.GET("/day/:date", auth, h.DaySummary)
		summary.GET("/week/:date", auth, h.WeekSummary)
	}
}
