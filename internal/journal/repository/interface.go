package repository

import (
	"context"
	"time"

	"daily-planner/internal/model"
)

// Repository defines the data access interface for the journal domain.
type Repository interface {
	// ListHabits returns the stored habit flags of a date. Habits never toggled are absent.
	ListHabits(ctx context.Context, date time.Time) ([]model.Habit, error)
	SetHabit(ctx context.Context, opt SetHabitOptions) error

	// GetReflection returns a zero Reflection when none is stored.
	GetReflection(ctx context.Context, date time.Time) (model.Reflection, error)
	SaveReflection(ctx context.Context, r model.Reflection) (model.Reflection, error)
}
