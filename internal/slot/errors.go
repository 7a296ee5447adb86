package slot

import "errors"

// Domain-specific errors for the slot package.
var (
	ErrEmptyInput       = errors.New("input text is empty")
	ErrInvalidStatus    = errors.New("status must be one of open, done, skipped")
	ErrInvalidSlotIndex = errors.New("slot index must be between 1 and 48")
	ErrSlotNotFound     = errors.New("slot not found")
	ErrTaskNotFound     = errors.New("task not found")
)
