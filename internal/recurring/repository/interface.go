package repository

import (
	"context"

	"daily-planner/internal/model"
)

// Repository defines the data access interface for recurring templates.
type Repository interface {
	Create(ctx context.Context, t model.Template) (model.Template, error)
	// List returns templates oldest first.
	List(ctx context.Context) ([]model.Template, error)
	Delete(ctx context.Context, id string) (int, error)
}
