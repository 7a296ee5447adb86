package recurring

import (
	"context"
	"time"

	"daily-planner/internal/model"
)

// UseCase defines the business logic interface for recurring templates.
type UseCase interface {
	// Create validates the line by a dry-run parse and stores the template.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Template, error)
	List(ctx context.Context, sc model.Scope) ([]model.Template, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Apply schedules every template whose rule matches date.
	Apply(ctx context.Context, sc model.Scope, date time.Time) (ApplyOutput, error)
}
