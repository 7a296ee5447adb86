package http

import (
	"errors"
	"net/http"

	"daily-planner/internal/journal"
	pkgErrors "daily-planner/pkg/errors"
)

var errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD, today, tomorrow or yesterday")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, journal.ErrUnknownHabit):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, journal.ErrReflectionTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
