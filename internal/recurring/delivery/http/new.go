package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/recurring"
	"daily-planner/pkg/datemath"
	"daily-planner/pkg/log"
)

// Handler is the public interface for the recurring HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Delete(c *gin.Context)
	Apply(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    recurring.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

// New creates a new HTTP handler for recurring templates.
func New(l log.Logger, uc recurring.UseCase, dates *datemath.Parser) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
		now:   time.Now,
	}
}
