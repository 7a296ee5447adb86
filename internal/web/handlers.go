package web

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
)

// Day renders the planner page of :date, or today on "/".
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.dates.ParseDate(strings.TrimSpace(c.Param("date")), h.now())
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	sc := middleware.Scope(c)
	view, err := h.slotUC.Day(ctx, sc, date)
	if err != nil {
		h.l.Errorf(ctx, "web.Day: slotUC.Day: %v", err)
		c.String(http.StatusInternalServerError, "Could not load the day, please retry.")
		return
	}
	sum, err := h.slotUC.DaySummary(ctx, sc, date)
	if err != nil {
		h.l.Errorf(ctx, "web.Day: slotUC.DaySummary: %v", err)
		c.String(http.StatusInternalServerError, "Could not load the day, please retry.")
		return
	}
	jd, err := h.journalUC.GetDay(ctx, sc, date)
	if err != nil {
		h.l.Errorf(ctx, "web.Day: journalUC.GetDay: %v", err)
		c.String(http.StatusInternalServerError, "Could not load the day, please retry.")
		return
	}

	h.render(c, "day.html", h.newDayVM(date, view, sum, jd))
}

// Login renders the password form.
func (h *handler) Login(c *gin.Context) {
	h.render(c, "login.html", loginVM{Failed: c.Query("failed") != ""})
}

func (h *handler) render(c *gin.Context, name string, data any) {
	var b bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		h.l.Errorf(c.Request.Context(), "web.render %s: %v", name, err)
		c.String(http.StatusInternalServerError, "Could not render the page.")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", b.Bytes())
}
