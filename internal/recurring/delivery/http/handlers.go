package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
	"daily-planner/pkg/response"
)

// Create godoc
// @Summary     Add a recurring template
// @Description Stores a planner line without a date and a rule: daily, weekdays or weekly:<weekday>.
// @Tags        Recurring
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Line and rule"
// @Success     200  {object} templateResp
// @Failure     400  {object} response.Resp "Bad line or rule"
// @Router      /api/v1/recurring [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	tpl, err := h.uc.Create(ctx, middleware.Scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTemplateResp(tpl))
}

// List godoc
// @Summary     List recurring templates
// @Tags        Recurring
// @Produce     json
// @Success     200 {array} templateResp
// @Router      /api/v1/recurring [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	templates, err := h.uc.List(ctx, middleware.Scope(c))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTemplateResps(templates))
}

// Delete godoc
// @Summary     Delete a recurring template
// @Tags        Recurring
// @Produce     json
// @Param       id path string true "Template ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not found"
// @Router      /api/v1/recurring/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.Scope(c), c.Param("id")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Apply godoc
// @Summary     Apply templates to a date
// @Description Schedules every template whose rule matches the date. Templates already on the date are skipped; failing templates are reported, the rest still apply.
// @Tags        Recurring
// @Produce     json
// @Param       date path string true "YYYY-MM-DD, today, tomorrow or yesterday"
// @Success     200 {object} applyResp
// @Router      /api/v1/recurring/apply/{date} [POST]
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.dates.ParseDate(strings.TrimSpace(c.Param("date")), h.now())
	if err != nil {
		response.Error(c, errInvalidDate, nil)
		return
	}

	out, err := h.uc.Apply(ctx, middleware.Scope(c), date)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newApplyResp(out))
}
