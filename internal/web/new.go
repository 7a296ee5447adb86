package web

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/journal"
	"daily-planner/internal/slot"
	"daily-planner/pkg/datemath"
	"daily-planner/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler serves the server-rendered pages.
type Handler interface {
	Day(c *gin.Context)
	Login(c *gin.Context)
}

// Config switches page features.
type Config struct {
	// ShowLogout renders the logout button; off when the session gate is disabled.
	ShowLogout bool
}

type handler struct {
	l          log.Logger
	slotUC     slot.UseCase
	journalUC  journal.UseCase
	dates      *datemath.Parser
	tmpl       *template.Template
	showLogout bool
	now        func() time.Time
}

// New parses the embedded templates and returns the page handler.
func New(l log.Logger, slotUC slot.UseCase, journalUC journal.UseCase, dates *datemath.Parser, cfg Config) (Handler, error) {
	tmpl, err := template.New("base").Funcs(template.FuncMap{
		"trim": strings.TrimSpace,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &handler{
		l:          l,
		slotUC:     slotUC,
		journalUC:  journalUC,
		dates:      dates,
		tmpl:       tmpl,
		showLogout: cfg.ShowLogout,
		now:        time.Now,
	}, nil
}
