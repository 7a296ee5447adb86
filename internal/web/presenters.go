package web

import (
	"html/template"
	"math"
	"time"

	"daily-planner/internal/journal"
	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/slot"
)

type rowVM struct {
	Index  int
	Time   string
	Slot   *model.Slot
	Icon   string
	Status string
	// Continues is set when the previous row holds the same task.
	Continues bool
}

type countVM struct {
	Label string
	Count int
}

type summaryVM struct {
	Slots          int
	Tasks          int
	Done           int
	Skipped        int
	Open           int
	MinutesPlanned int
	MinutesDone    int
	CompletionPct  int
	Categories     []countVM
}

type dayVM struct {
	DateISO        string
	DateLabel      string
	Prev           string
	Next           string
	IsToday        bool
	Rows           []rowVM
	Habits         []model.Habit
	HabitsDone     int
	ReflectionText string
	ReflectionHTML template.HTML
	Summary        summaryVM
	ShowLogout     bool
}

type loginVM struct {
	Failed bool
}

func newRows(view slot.DayView) []rowVM {
	rows := make([]rowVM, len(view.Cells))
	prevTask := ""
	for i, cell := range view.Cells {
		row := rowVM{Index: cell.Index, Time: cell.Start.Format("15:04")}
		if cell.Slot != nil {
			row.Slot = cell.Slot
			row.Icon = cell.Slot.Category.Icon()
			row.Status = string(cell.Slot.Status)
			row.Continues = cell.Slot.TaskID != "" && cell.Slot.TaskID == prevTask
			prevTask = cell.Slot.TaskID
		} else {
			prevTask = ""
		}
		rows[i] = row
	}
	return rows
}

func newSummaryVM(s slot.DaySummary) summaryVM {
	vm := summaryVM{
		Slots:          s.TotalSlots,
		Tasks:          s.Tasks,
		Done:           s.ByStatus[planner.StatusDone],
		Skipped:        s.ByStatus[planner.StatusSkipped],
		Open:           s.ByStatus[planner.StatusOpen],
		MinutesPlanned: s.MinutesPlanned,
		MinutesDone:    s.MinutesDone,
		CompletionPct:  int(math.Round(s.CompletionRate() * 100)),
	}
	for _, c := range planner.Categories() {
		if n := s.ByCategory[c]; n > 0 {
			vm.Categories = append(vm.Categories, countVM{Label: c.Icon() + " " + c.String(), Count: n})
		}
	}
	return vm
}

func (h *handler) newDayVM(date time.Time, view slot.DayView, sum slot.DaySummary, jd journal.Day) dayVM {
	today := h.dates.StartOfDay(h.now())
	return dayVM{
		DateISO:        date.Format(time.DateOnly),
		DateLabel:      date.Format("Monday, 2 January 2006"),
		Prev:           h.dates.AddDays(date, -1).Format(time.DateOnly),
		Next:           h.dates.AddDays(date, 1).Format(time.DateOnly),
		IsToday:        date.Equal(today),
		Rows:           newRows(view),
		Habits:         jd.Habits,
		HabitsDone:     jd.HabitsDone(),
		ReflectionText: jd.Reflection.Text,
		ReflectionHTML: jd.Reflection.HTML,
		Summary:        newSummaryVM(sum),
		ShowLogout:     h.showLogout,
	}
}
