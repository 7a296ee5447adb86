package slot

import (
	"context"
	"time"

	"daily-planner/internal/model"
)

// UseCase defines the business logic interface for the slot domain.
type UseCase interface {
	// Create parses one planner line, expands it into slots and stores them.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// Parse runs the parser and slot expansion without storing anything.
	Parse(ctx context.Context, sc model.Scope, input CreateInput) (ParseOutput, error)

	Day(ctx context.Context, sc model.Scope, date time.Time) (DayView, error)
	SetStatus(ctx context.Context, sc model.Scope, input SetStatusInput) (model.Slot, error)
	Delete(ctx context.Context, sc model.Scope, date time.Time, index int) error
	DeleteTask(ctx context.Context, sc model.Scope, taskID string) (int, error)

	DaySummary(ctx context.Context, sc model.Scope, date time.Time) (DaySummary, error)
	WeekSummary(ctx context.Context, sc model.Scope, date time.Time) (WeekSummary, error)
}
