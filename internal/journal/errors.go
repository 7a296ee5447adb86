package journal

import "errors"

// Domain-specific errors for the journal package.
var (
	ErrUnknownHabit      = errors.New("habit is not configured")
	ErrReflectionTooLong   = errors.New("reflection is too long")
)
