package repository

import (
	"context"
	"time"

	"daily-planner/internal/model"
)

// Repository is the slot data access interface. Slots are keyed by (date, index);
// storing a slot at an occupied position replaces it.
type Repository interface {
	UpsertSlots(ctx context.Context, slots []model.Slot) ([]model.Slot, error)
	ListByDate(ctx context.Context, date time.Time) ([]model.Slot, error)
	ListByRange(ctx context.Context, opt ListByRangeOptions) ([]model.Slot, error)
	UpdateStatus(ctx context.Context, opt UpdateStatusOptions) ([]model.Slot, error)
	DeleteSlot(ctx context.Context, date time.Time, index int) (int, error)
	DeleteTask(ctx context.Context, taskID string) (int, error)
}
