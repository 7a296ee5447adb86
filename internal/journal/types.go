package journal

import (
	"html/template"
	"time"

	"daily-planner/internal/model"
)

// Reflection is a stored reflection plus its rendered HTML.
type Reflection struct {
	model.Reflection
	HTML template.HTML
}

// Day is the journal of one date: every configured habit with its done flag and the reflection.
type Day struct {
	Date       time.Time
	Habits     []model.Habit
	Reflection Reflection
}

// HabitsDone counts the habits marked done.
func (d Day) HabitsDone() int {
	n := 0
	for _, h := range d.Habits {
		if h.Done {
			n++
		}
	}
	return n
}

// ToggleHabitInput flips one habit of a date.
type ToggleHabitInput struct {
	Date time.Time
	Name string
}

// SaveReflectionInput replaces the reflection of a date.
type SaveReflectionInput struct {
	Date time.Time
	Text string
}
