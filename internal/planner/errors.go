package planner

import (
	"errors"
	"fmt"
)

// Rejections of a whole planner line. Match them with errors.Is.
var (
	ErrInvalidTimeToken = errors.New("invalid time")
	ErrTimeMissing      = errors.New("time missing: add @<time> or from <time> to <time>")
	ErrInvalidTimeOrder = errors.New("end time must be after start time")
)

// errUnrecognizedMonth never leaves the package: the date resolver falls back to the default date.
var errUnrecognizedMonth = errors.New("unrecognized month")

// Error describes why a line could not be scheduled.
type Error struct {
	Kind   error  // one of the Err* sentinels
	Token  string // offending fragment, may be empty
	Detail string
}

func newError(kind error, token, detail string) *Error {
	return &Error{Kind: kind, Token: token, Detail: detail}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Token != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Token)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// IsParseError reports whether err is a line rejection from this package.
func IsParseError(err error) bool {
	var pe *Error
	return errors.As(err, &pe)
}
