package http

import (
	"errors"
	"net/http"

	"daily-planner/internal/planner"
	"daily-planner/internal/recurring"
	pkgErrors "daily-planner/pkg/errors"
)

var errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD, today, tomorrow or yesterday")

func (h *handler) mapError(err error) error {
	if planner.IsParseError(err) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	switch {
	case errors.Is(err, recurring.ErrEmptyLine),
		errors.Is(err, recurring.ErrInvalidRule),
		errors.Is(err, recurring.ErrDatedLine):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, recurring.ErrTemplateNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// failureMessage hides store errors behind a generic text.
func failureMessage(err error) string {
	if planner.IsParseError(err) || errors.Is(err, recurring.ErrInvalidRule) {
		return err.Error()
	}
	return "could not be saved"
}
