package model

import "daily-planner/internal/planner"

// Slot is a stored half-hour slot. TaskID groups the slots produced by one planner line.
type Slot struct {
	ID     string
	TaskID string
	planner.SlotRecord
}
