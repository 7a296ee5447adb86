package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
	journalHTTP "daily-planner/internal/journal/delivery/http"
	recurringHTTP "daily-planner/internal/recurring/delivery/http"
	slotHTTP "daily-planner/internal/slot/delivery/http"
	slotTelegram "daily-planner/internal/slot/delivery/telegram"
	"daily-planner/internal/web"
	"daily-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	ready       func(ctx context.Context) error

	// Domains
	slotHandler      slotHTTP.Handler
	journalHandler   journalHTTP.Handler
	recurringHandler recurringHTTP.Handler
	telegramHandler  slotTelegram.Handler
	pageHandler      web.Handler
}

// Config is the dependency bag passed to New(). TelegramHandler is optional.
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	// ReadyCheck backs /ready; nil means always ready.
	ReadyCheck func(ctx context.Context) error

	SlotHandler      slotHTTP.Handler
	JournalHandler   journalHTTP.Handler
	RecurringHandler recurringHTTP.Handler
	TelegramHandler  slotTelegram.Handler
	PageHandler      web.Handler
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		ready:            cfg.ReadyCheck,
		slotHandler:      cfg.SlotHandler,
		journalHandler:   cfg.JournalHandler,
		recurringHandler: cfg.RecurringHandler,
		telegramHandler:  cfg.TelegramHandler,
		pageHandler:      cfg.PageHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.slotHandler == nil || srv.journalHandler == nil || srv.recurringHandler == nil || srv.pageHandler == nil {
		return errors.New("slot, journal, recurring and page handlers are required")
	}
	return nil
}

// Handler exposes the router, e.g. for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
