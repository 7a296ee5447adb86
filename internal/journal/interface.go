package journal

import (
	"context"
	"time"

	"daily-planner/internal/model"
)

// UseCase defines the business logic interface for habits and reflections.
type UseCase interface {
	GetDay(ctx context.Context, sc model.Scope, date time.Time) (Day, error)

	// ToggleHabit flips the done flag of a configured habit and returns the new state.
	ToggleHabit(ctx context.Context, sc model.Scope, input ToggleHabitInput) (model.Habit, error)

	// SaveReflection replaces the reflection of a date. Empty text clears it.
	SaveReflection(ctx context.Context, sc model.Scope, input SaveReflectionInput) (Reflection, error)

	// Habits lists the configured habit names in display order.
	Habits() []string
}
