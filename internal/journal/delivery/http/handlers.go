package http

import (
	"github.com/gin-gonic/gin"

	"daily-planner/internal/journal"
	"daily-planner/internal/middleware"
	"daily-planner/pkg/response"
)

// GetDay godoc
// @Summary     Journal of a day
// @Description Configured habits with their done flags, and the reflection as markdown and rendered HTML.
// @Tags        Journal
// @Produce     json
// @Param       date path string true "YYYY-MM-DD, today, tomorrow or yesterday"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad date"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/journal/{date} [GET]
func (h *handler) GetDay(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	day, err := h.uc.GetDay(ctx, middleware.Scope(c), date)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayResp(day))
}

// ToggleHabit godoc
// @Summary     Toggle a habit
// @Tags        Journal
// @Produce     json
// @Param       date path string true "YYYY-MM-DD, today, tomorrow or yesterday"
// @Param       name path string true "Habit name (case-insensitive)"
// @Success     200 {object} habitResp
// @Failure     404 {object} response.Resp "Habit not configured"
// @Router      /api/v1/journal/{date}/habits/{name}/toggle [POST]
func (h *handler) ToggleHabit(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	habit, err := h.uc.ToggleHabit(ctx, middleware.Scope(c), journal.ToggleHabitInput{
		Date: date,
		Name: c.Param("name"),
	})
	if err != nil {
		h.l.Warnf(ctx, "uc.ToggleHabit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newHabitResp(habit))
}

// SaveReflection godoc
// @Summary     Save the reflection of a day
// @Description Replaces the markdown reflection; empty text clears it.
// @Tags        Journal
// @Accept      json
// @Produce     json
// @Param       date path string        true "YYYY-MM-DD, today, tomorrow or yesterday"
// @Param       body body reflectionReq true "Markdown text"
// @Success     200  {object} reflectionResp
// @Failure     413  {object} response.Resp "Too long"
// @Router      /api/v1/journal/{date}/reflection [PUT]
func (h *handler) SaveReflection(c *gin.Context) {
	ctx := c.Request.Context()

	req, date, err := h.processReflectionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	ref, err := h.uc.SaveReflection(ctx, middleware.Scope(c), journal.SaveReflectionInput{
		Date: date,
		Text: req.Text,
	})
	if err != nil {
		h.l.Warnf(ctx, "uc.SaveReflection: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newReflectionResp(ref))
}
