package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	journalHTTP "daily-planner/internal/journal/delivery/http"
	"daily-planner/internal/model"
	recurringHTTP "daily-planner/internal/recurring/delivery/http"
	slotHTTP "daily-planner/internal/slot/delivery/http"
	"daily-planner/internal/web"
)

const apiPrefix = "/api/v1"

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.RequestID(), srv.mw.Logger())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
	if !srv.mw.Enabled() {
		srv.l.Warnf(ctx, "Session gate disabled: set session.password to require a login")
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group(apiPrefix)
	slotHTTP.RegisterRoutes(api, srv.slotHandler, srv.mw)
	journalHTTP.RegisterRoutes(api, srv.journalHandler, srv.mw)
	recurringHTTP.RegisterRoutes(api, srv.recurringHandler, srv.mw)
	web.RegisterRoutes(srv.gin, srv.pageHandler, srv.mw)

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
