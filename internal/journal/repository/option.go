package repository

import "time"

// SetHabitOptions stores the done flag of one habit on one date.
type SetHabitOptions struct {
	Date time.Time
	Name string
	Done bool
}
