package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/slot"
	"daily-planner/pkg/datemath"
	"daily-planner/pkg/log"
)

// Handler is the public interface for the slot HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Parse(c *gin.Context)
	Day(c *gin.Context)
	SetStatus(c *gin.Context)
	Delete(c *gin.Context)
	DeleteTask(c *gin.Context)
	DaySummary(c *gin.Context)
	WeekSummary(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    slot.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

// New creates a new HTTP handler for the slot domain. dates resolves :date path values
// such as "2026-01-10", "today" or "tomorrow".
func New(l log.Logger, uc slot.UseCase, dates *datemath.Parser) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
		now:   time.Now,
	}
}
