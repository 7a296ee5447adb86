package rest

import (
	"fmt"
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
)

const dateLayout = "2006-01-02"

// slotRow is the stored shape of a slot.
type slotRow struct {
	ID           string    `json:"id"`
	TaskID       string    `json:"task_id"`
	Date         string    `json:"date"`
	SlotIndex    int       `json:"slot_index"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	Title        string    `json:"title"`
	Priority     string    `json:"priority"`
	PriorityRank int       `json:"priority_rank"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Quadrant     string    `json:"quadrant"`
	Status       string    `json:"status"`
}

func toRow(s model.Slot) slotRow {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return slotRow{
		ID:           s.ID,
		TaskID:       s.TaskID,
		Date:         s.Date.Format(dateLayout),
		SlotIndex:    s.Index,
		StartAt:      s.Start,
		EndAt:        s.End,
		Title:        s.Title,
		Priority:     s.Priority.String(),
		PriorityRank: s.PriorityRank(),
		Category:     s.Category.String(),
		Tags:         tags,
		Quadrant:     s.Quadrant.String(),
		Status:       string(s.Status),
	}
}

func (r *implRepository) toSlot(row slotRow) (model.Slot, error) {
	date, err := time.ParseInLocation(dateLayout, row.Date, r.loc)
	if err != nil {
		return model.Slot{}, fmt.Errorf("slot %s: bad date %q: %w", row.ID, row.Date, err)
	}
	priority, ok := planner.ParsePriority(row.Priority)
	if !ok {
		priority = planner.DefaultPriority
	}
	category, ok := planner.ParseCategory(row.Category)
	if !ok {
		category = planner.DefaultCategory
	}
	quadrant, _ := planner.ParseQuadrant(row.Quadrant)
	status, ok := planner.ParseSlotStatus(row.Status)
	if !ok {
		status = planner.StatusOpen
	}

	return model.Slot{
		ID:     row.ID,
		TaskID: row.TaskID,
		SlotRecord: planner.SlotRecord{
			Date:     date,
			Index:    row.SlotIndex,
			Start:    row.StartAt.In(r.loc),
			End:      row.EndAt.In(r.loc),
			Title:    row.Title,
			Priority: priority,
			Category: category,
			Tags:     row.Tags,
			Quadrant: quadrant,
			Status:   status,
		},
	}, nil
}

func (r *implRepository) toSlots(rows []slotRow) ([]model.Slot, error) {
	slots := make([]model.Slot, 0, len(rows))
	for _, row := range rows {
		s, err := r.toSlot(row)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}
