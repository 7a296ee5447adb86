package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *handler) parseDate(value string) (time.Time, error) {
	date, err := h.dates.ParseDate(strings.TrimSpace(value), h.now())
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return date, nil
}

func (h *handler) processReflectionReq(c *gin.Context) (reflectionReq, time.Time, error) {
	var req reflectionReq
	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		return req, date, err
	}
	if err := c.ShouldBind(&req); err != nil {
		return req, date, err
	}
	return req, date, nil
}
