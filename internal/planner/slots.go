package planner

import (
	"slices"
	"time"
)

// Expand splits task into SlotDuration steps from Start; the last slot ends at End.
// Every slot starts open.
func Expand(task ParsedTask) []SlotRecord {
	if !task.End.After(task.Start) {
		return nil
	}

	loc := task.Start.Location()
	n := int((task.Duration() + SlotDuration - 1) / SlotDuration)
	slots := make([]SlotRecord, 0, n)

	for cur := task.Start; cur.Before(task.End); cur = cur.Add(SlotDuration) {
		end := cur.Add(SlotDuration)
		if end.After(task.End) {
			end = task.End
		}
		date, index := SlotPosition(cur, loc)
		slots = append(slots, SlotRecord{
			Date:     date,
			Index:    index,
			Start:    cur,
			End:      end,
			Title:    task.Title,
			Priority: task.Priority,
			Category: task.Category,
			Tags:     slices.Clone(task.Tags),
			Quadrant: task.Quadrant,
			Status:   StatusOpen,
		})
	}
	return slots
}

// SlotPosition returns the civil date of t in loc and the 1-based slot containing t.
func SlotPosition(t time.Time, loc *time.Location) (time.Time, int) {
	t = t.In(loc)
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	minutes := t.Hour()*60 + t.Minute()
	return date, minutes/int(SlotDuration/time.Minute) + 1
}

// SlotStart returns the start of the 1-based slot index on date.
func SlotStart(date time.Time, index int) time.Time {
	return date.Add(time.Duration(index-1) * SlotDuration)
}

// ValidSlotIndex reports whether index addresses a slot of a day.
func ValidSlotIndex(index int) bool {
	return index >= 1 && index <= SlotsPerDay
}
