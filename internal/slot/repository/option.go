package repository

import (
	"time"

	"daily-planner/internal/planner"
)

// ListByRangeOptions selects slots whose date lies in [From, To].
type ListByRangeOptions struct {
	From time.Time
	To   time.Time
}

// UpdateStatusOptions addresses one slot and its new status.
type UpdateStatusOptions struct {
	Date   time.Time
	Index  int
	Status planner.SlotStatus
}
