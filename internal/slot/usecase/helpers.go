package usecase

import (
	"fmt"
	"strings"
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/slot"
)

const dayKeyLayout = "2006-01-02"

// uiDate resolves the date a line is parsed against; zero means today.
func (uc *implUseCase) uiDate(t time.Time) time.Time {
	if t.IsZero() {
		t = uc.now()
	}
	return uc.dates.StartOfDay(t)
}

// parserFor picks the parser configured for the request source.
func (uc *implUseCase) parserFor(sc model.Scope) *planner.Parser {
	if p, ok := uc.parsers[sc.Source]; ok {
		return p
	}
	return uc.parser
}

func dayKey(date time.Time) string {
	return date.Format(dayKeyLayout)
}

func (uc *implUseCase) invalidate(slots []model.Slot) {
	for _, s := range slots {
		uc.days.Remove(dayKey(s.Date))
	}
}

func newDayView(date time.Time, slots []model.Slot) slot.DayView {
	cells := make([]slot.Cell, planner.SlotsPerDay)
	for i := range cells {
		start := planner.SlotStart(date, i+1)
		cells[i] = slot.Cell{
			Index: i + 1,
			Start: start,
			End:   start.Add(planner.SlotDuration),
		}
	}
	for i := range slots {
		if planner.ValidSlotIndex(slots[i].Index) {
			cells[slots[i].Index-1].Slot = &slots[i]
		}
	}
	return slot.DayView{Date: date, Cells: cells}
}

func summarize(date time.Time, slots []model.Slot) slot.DaySummary {
	sum := slot.DaySummary{
		Date: date,
		ByStatus: map[planner.SlotStatus]int{
			planner.StatusOpen:    0,
			planner.StatusDone:    0,
			planner.StatusSkipped: 0,
		},
		ByCategory: make(map[planner.Category]int),
		ByPriority: make(map[planner.Priority]int),
	}

	tasks := make(map[string]struct{})
	for _, s := range slots {
		minutes := int(s.Duration() / time.Minute)
		sum.TotalSlots++
		sum.ByStatus[s.Status]++
		sum.ByCategory[s.Category]++
		sum.ByPriority[s.Priority]++
		sum.MinutesPlanned += minutes
		if s.Status == planner.StatusDone {
			sum.MinutesDone += minutes
		}
		tasks[s.TaskID] = struct{}{}
	}
	sum.Tasks = len(tasks)
	return sum
}

// eventColors maps priorities onto Google Calendar event color ids.
var eventColors = map[planner.Priority]string{
	planner.PriorityCritical: "11",
	planner.PriorityHigh:     "6",
	planner.PriorityMedium:   "5",
	planner.PriorityLow:      "2",
}

// describeTask is the calendar event body.
func describeTask(task planner.ParsedTask) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Priority: %s\nCategory: %s %s", task.Priority, task.Category.Icon(), task.Category)
	if task.Quadrant != planner.QuadrantNone {
		fmt.Fprintf(&b, "\nQuadrant: %s (%s)", task.Quadrant, task.Quadrant.Label())
	}
	if len(task.Tags) > 0 {
		b.WriteString("\nTags: #" + strings.Join(task.Tags, " #"))
	}
	return b.String()
}
