package http

import (
	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
	"daily-planner/internal/slot"
	"daily-planner/pkg/response"
)

// Create godoc
// @Summary     Schedule a planner line
// @Description Parses one free-text line (e.g. "Gym @6am to 7am $High %Health #fitness"), expands it into half-hour slots and stores them. Occupied slots are overwritten.
// @Tags        Slots
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Planner line and optional UI date"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Unparseable line"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/slots [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, date, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, middleware.Scope(c), req.toInput(date))
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Parse godoc
// @Summary     Dry-run parse
// @Description Parses a planner line and returns the task and its slots without storing anything.
// @Tags        Slots
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Planner line and optional UI date"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Unparseable line"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, date, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, middleware.Scope(c), req.toInput(date))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Day godoc
// @Summary     Day grid
// @Description Returns the 48 half-hour cells of a date; free cells have a null slot.
// @Tags        Slots
// @Produce     json
// @Param       date path string true "YYYY-MM-DD, today, tomorrow or yesterday"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad date"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/days/{date} [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	view, err := h.uc.Day(ctx, middleware.Scope(c), date)
	if err != nil {
		h.l.Errorf(ctx, "uc.Day: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayResp(view))
}

// SetStatus godoc
// @Summary     Change slot status
// @Description Marks one slot open, done or skipped.
// @Tags        Slots
// @Accept      json
// @Produce     json
// @Param       date  path string    true "YYYY-MM-DD"
// @Param       index path int       true "Slot index 1-48"
// @Param       body  body statusReq true "New status"
// @Success     200 {object} slotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Free slot"
// @Router      /api/v1/days/{date}/slots/{index} [PATCH]
func (h *handler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, date, index, err := h.processStatusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.SetStatus(ctx, middleware.Scope(c), slot.SetStatusInput{
		Date:   date,
		Index:  index,
		Status: req.Status,
	})
	if err != nil {
		h.l.Warnf(ctx, "uc.SetStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSlotResp(updated))
}

// Delete godoc
// @Summary     Free a slot
// @Tags        Slots
// @Produce     json
// @Param       date  path string true "YYYY-MM-DD"
// @Param       index path int    true "Slot index 1-48"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Free slot"
// @Router      /api/v1/days/{date}/slots/{index} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	date, index, err := h.processSlotPath(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, middleware.Scope(c), date, index); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// DeleteTask godoc
// @Summary     Delete a task
// @Description Removes every slot created by one planner line.
// @Tags        Slots
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} deleteTaskResp
// @Failure     404 {object} response.Resp "Unknown task"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	n, err := h.uc.DeleteTask(ctx, middleware.Scope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, deleteTaskResp{Deleted: n})
}

// DaySummary godoc
// @Summary     Day summary
// @Description Slot counts by status, category and priority plus planned and done minutes.
// @Tags        Summary
// @Produce     json
// @Param       date path string true "YYYY-MM-DD"
// @Success     200 {object} summaryResp
// @Router      /api/v1/summary/day/{date} [GET]
func (h *handler) DaySummary(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sum, err := h.uc.DaySummary(ctx, middleware.Scope(c), date)
	if err != nil {
		h.l.Errorf(ctx, "uc.DaySummary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSummaryResp(sum))
}

// WeekSummary godoc
// @Summary     Week summary
// @Description Seven day summaries of the Monday-to-Sunday week containing the date, plus totals.
// @Tags        Summary
// @Produce     json
// @Param       date path string true "Any date of the week"
// @Success     200 {object} weekResp
// @Router      /api/v1/summary/week/{date} [GET]
func (h *handler) WeekSummary(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	week, err := h.uc.WeekSummary(ctx, middleware.Scope(c), date)
	if err != nil {
		h.l.Errorf(ctx, "uc.WeekSummary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newWeekResp(week))
}
