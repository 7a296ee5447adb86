package web

import (
	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
)

// RegisterRoutes maps the pages onto the root router.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.GET("/login", h.Login)
	r.POST("/login", mw.Login)
	r.POST("/logout", mw.Logout)

	auth := mw.Auth()
	r.GET("/", auth, h.Day)
	r.GET("/day/:date", auth, h.Day)
}
