package model

import "time"

// Habit is one configured daily habit and whether it was done on a date.
type Habit struct {
	Name string
	Done bool
}

// Reflection is the free-form markdown note of a day.
type Reflection struct {
	Date      time.Time
	Text      string
	UpdatedAt time.Time
}
