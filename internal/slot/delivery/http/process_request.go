package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// parseDate resolves a date value; "" means today.
func (h *handler) parseDate(value string) (time.Time, error) {
	date, err := h.dates.ParseDate(strings.TrimSpace(value), h.now())
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return date, nil
}

// processCreateReq binds the planner line and resolves its optional UI date.
func (h *handler) processCreateReq(c *gin.Context) (createReq, time.Time, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, time.Time{}, err
	}
	date, err := h.parseDate(req.Date)
	return req, date, err
}

// processSlotPath reads the :date and :index path params.
func (h *handler) processSlotPath(c *gin.Context) (time.Time, int, error) {
	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		return time.Time{}, 0, err
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return time.Time{}, 0, errInvalidIndex
	}
	return date, index, nil
}

// processStatusReq binds the status body of a slot path.
func (h *handler) processStatusReq(c *gin.Context) (statusReq, time.Time, int, error) {
	var req statusReq
	date, index, err := h.processSlotPath(c)
	if err != nil {
		return req, date, index, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, date, index, err
	}
	return req, date, index, nil
}
