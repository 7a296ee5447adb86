package http

import (
	"errors"
	"net/http"

	"daily-planner/internal/planner"
	"daily-planner/internal/slot"
	pkgErrors "daily-planner/pkg/errors"
)

var (
	errInvalidDate  = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD, today, tomorrow or yesterday")
	errInvalidIndex = pkgErrors.NewHTTPError(http.StatusBadRequest, "slot index must be a number")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if planner.IsParseError(err) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	switch {
	case errors.Is(err, slot.ErrEmptyInput),
		errors.Is(err, slot.ErrInvalidStatus),
		errors.Is(err, slot.ErrInvalidSlotIndex):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, slot.ErrSlotNotFound),
		errors.Is(err, slot.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
