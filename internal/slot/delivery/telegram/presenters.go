package telegram

import (
	"fmt"
	"strings"

	"daily-planner/internal/planner"
	"daily-planner/internal/slot"
)

func formatCreated(out slot.CreateOutput) string {
	t := out.Task
	title := t.Title
	if title == "" {
		title = "(untitled)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ %s %s\n   %s %s-%s, %d slot(s), %s",
		t.Category.Icon(), title,
		t.Date.Format("Mon 2 Jan"), t.Start.Format("15:04"), t.End.Format("15:04"),
		len(out.Slots), t.Priority)
	if t.Quadrant != planner.QuadrantNone {
		fmt.Fprintf(&b, ", %s %s", t.Quadrant, t.Quadrant.Label())
	}
	if len(t.Tags) > 0 {
		b.WriteString(", #" + strings.Join(t.Tags, " #"))
	}
	if out.CalendarLink != "" {
		b.WriteString("\n   📅 " + out.CalendarLink)
	}
	b.WriteString("\n")
	return b.String()
}

func formatDay(view slot.DayView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan for %s\n", view.Date.Format("Mon 2 Jan 2006"))

	n := 0
	for _, c := range view.Cells {
		if c.Slot == nil {
			continue
		}
		n++
		mark := "▫️"
		switch c.Slot.Status {
		case planner.StatusDone:
			mark = "✅"
		case planner.StatusSkipped:
			mark = "⏭"
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", mark, c.Start.Format("15:04"), c.Slot.Category.Icon(), c.Slot.Title)
	}
	if n == 0 {
		b.WriteString("Nothing planned yet.")
	}
	return strings.TrimSpace(b.String())
}
