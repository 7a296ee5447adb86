package recurring

import "errors"

// Domain-specific errors for the recurring package.
var (
	ErrEmptyLine        = errors.New("template line is empty")
	ErrInvalidRule      = errors.New("rule must be daily, weekdays or weekly:<weekday>")
	ErrDatedLine        = errors.New("template line must not name a date")
	ErrTemplateNotFound = errors.New("template not found")
)
