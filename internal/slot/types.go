package slot

import (
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
)

// CreateInput is one planner line to schedule.
type CreateInput struct {
	RawText string
	UIDate  time.Time // day shown to the user; zero means today
}

// CreateOutput is the result of scheduling one planner line.
type CreateOutput struct {
	TaskID       string
	Task         planner.ParsedTask
	Slots        []model.Slot
	CalendarLink string // empty when the calendar mirror is off or failed
}

// ParseOutput is a dry-run parse: nothing is stored.
type ParseOutput struct {
	Task  planner.ParsedTask
	Slots []planner.SlotRecord
}

// Cell is one position of the day grid. Slot is nil for a free half hour.
type Cell struct {
	Index int
	Start time.Time
	End   time.Time
	Slot  *model.Slot
}

// DayView is the full 48-cell grid of a date.
type DayView struct {
	Date  time.Time
	Cells []Cell
}

// SetStatusInput changes the status of one slot.
type SetStatusInput struct {
	Date   time.Time
	Index  int
	Status string
}

// DaySummary aggregates the slots of one date.
type DaySummary struct {
	Date           time.Time
	TotalSlots     int
	Tasks          int
	ByStatus       map[planner.SlotStatus]int
	ByCategory     map[planner.Category]int
	ByPriority     map[planner.Priority]int
	MinutesPlanned int
	MinutesDone    int
}

// CompletionRate is done minutes over planned minutes, 0 for an empty day.
func (s DaySummary) CompletionRate() float64 {
	if s.MinutesPlanned == 0 {
		return 0
	}
	return float64(s.MinutesDone) / float64(s.MinutesPlanned)
}

// WeekSummary is seven consecutive day summaries starting on a Monday.
type WeekSummary struct {
	WeekStart time.Time
	Days      []DaySummary
	Total     DaySummary
}
