package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/journal"
	"daily-planner/pkg/datemath"
	"daily-planner/pkg/log"
)

// Handler is the public interface for the journal HTTP delivery layer.
type Handler interface {
	GetDay(c *gin.Context)
	ToggleHabit(c *gin.Context)
	SaveReflection(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    journal.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

// New creates a new HTTP handler for the journal domain.
func New(l log.Logger, uc journal.UseCase, dates *datemath.Parser) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
		now:   time.Now,
	}
}
