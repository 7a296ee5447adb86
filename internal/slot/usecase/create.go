package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/slot"
	"daily-planner/pkg/gcalendar"
)

const untitledEvent = "(untitled)"

// Create parses a planner line, stores its slots and mirrors the task to the calendar.
// Parser errors are returned unchanged so the caller can show them.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input slot.CreateInput) (slot.CreateOutput, error) {
	line := strings.TrimSpace(input.RawText)
	if line == "" {
		return slot.CreateOutput{}, slot.ErrEmptyInput
	}

	task, err := uc.parserFor(sc).Parse(line, uc.uiDate(input.UIDate))
	if err != nil {
		uc.l.Infof(ctx, "slot.usecase.Create: rejected line from %s: %v", sc.Source, err)
		return slot.CreateOutput{}, err
	}

	taskID := uuid.NewString()
	records := planner.Expand(task)
	slots := make([]model.Slot, len(records))
	for i, r := range records {
		slots[i] = model.Slot{
			ID:         uuid.NewString(),
			TaskID:     taskID,
			SlotRecord: r,
		}
	}

	stored, err := uc.repo.UpsertSlots(ctx, slots)
	if err != nil {
		uc.l.Errorf(ctx, "slot.usecase.Create: UpsertSlots: %v", err)
		return slot.CreateOutput{}, err
	}
	uc.invalidate(slots)

	uc.l.Infof(ctx, "slot.usecase.Create: %q on %s, %d slots (%s)", task.Title, task.Date.Format(dayKeyLayout), len(stored), sc.Source)

	return slot.CreateOutput{
		TaskID:       taskID,
		Task:         task,
		Slots:        stored,
		CalendarLink: uc.mirror(ctx, task),
	}, nil
}

// Parse is Create without storage or calendar side effects.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input slot.CreateInput) (slot.ParseOutput, error) {
	line := strings.TrimSpace(input.RawText)
	if line == "" {
		return slot.ParseOutput{}, slot.ErrEmptyInput
	}

	task, err := uc.parserFor(sc).Parse(line, uc.uiDate(input.UIDate))
	if err != nil {
		return slot.ParseOutput{}, err
	}
	return slot.ParseOutput{Task: task, Slots: planner.Expand(task)}, nil
}

// mirror creates a calendar event for task. Failures are logged and swallowed.
func (uc *implUseCase) mirror(ctx context.Context, task planner.ParsedTask) string {
	if uc.calendar == nil {
		return ""
	}

	summary := task.Title
	if summary == "" {
		summary = untitledEvent
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     summary,
		Description: describeTask(task),
		StartTime:   task.Start,
		EndTime:     task.End,
		Timezone:    uc.parser.Location().String(),
		ColorID:     eventColors[task.Priority],
	})
	if err != nil {
		uc.l.Warnf(ctx, "slot.usecase.mirror: calendar event for %q not created: %v", summary, err)
		return ""
	}
	return event.HtmlLink
}
