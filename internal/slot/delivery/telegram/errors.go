package telegram

import (
	"errors"

	"daily-planner/internal/planner"
	"daily-planner/internal/slot"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	if planner.IsParseError(err) || errors.Is(err, slot.ErrEmptyInput) {
		return err.Error()
	}
	return "could not be saved, please try again"
}
