package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/slot"
	"daily-planner/internal/slot/repository"
)

// Day returns the 48-cell grid of date. Results are cached until a write touches the date.
func (uc *implUseCase) Day(ctx context.Context, sc model.Scope, date time.Time) (slot.DayView, error) {
	date = uc.dates.StartOfDay(date)
	key := dayKey(date)

	if view, ok := uc.days.Get(key); ok {
		view.Cells = slices.Clone(view.Cells)
		return view, nil
	}

	slots, err := uc.repo.ListByDate(ctx, date)
	if err != nil {
		uc.l.Errorf(ctx, "slot.usecase.Day: ListByDate %s: %v", key, err)
		return slot.DayView{}, err
	}

	view := newDayView(date, slots)
	uc.days.Add(key, view)

	view.Cells = slices.Clone(view.Cells)
	return view, nil
}

// SetStatus moves one slot to open, done or skipped.
func (uc *implUseCase) SetStatus(ctx context.Context, sc model.Scope, input slot.SetStatusInput) (model.Slot, error) {
	status, ok := planner.ParseSlotStatus(input.Status)
	if !ok {
		return model.Slot{}, slot.ErrInvalidStatus
	}
	if !planner.ValidSlotIndex(input.Index) {
		return model.Slot{}, slot.ErrInvalidSlotIndex
	}

	date := uc.dates.StartOfDay(input.Date)
	updated, err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		Date:   date,
		Index:  input.Index,
		Status: status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "slot.usecase.SetStatus: UpdateStatus: %v", err)
		return model.Slot{}, err
	}
	if len(updated) == 0 {
		return model.Slot{}, slot.ErrSlotNotFound
	}

	uc.days.Remove(dayKey(date))
	return updated[0], nil
}

// Delete frees one slot.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, date time.Time, index int) error {
	if !planner.ValidSlotIndex(index) {
		return slot.ErrInvalidSlotIndex
	}

	date = uc.dates.StartOfDay(date)
	n, err := uc.repo.DeleteSlot(ctx, date, index)
	if err != nil {
		uc.l.Errorf(ctx, "slot.usecase.Delete: DeleteSlot: %v", err)
		return err
	}
	if n == 0 {
		return slot.ErrSlotNotFound
	}

	uc.days.Remove(dayKey(date))
	return nil
}

// DeleteTask removes every slot of a task and returns how many were removed.
func (uc *implUseCase) DeleteTask(ctx context.Context, sc model.Scope, taskID string) (int, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return 0, slot.ErrTaskNotFound
	}

	n, err := uc.repo.DeleteTask(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "slot.usecase.DeleteTask: %v", err)
		return 0, err
	}
	if n == 0 {
		return 0, slot.ErrTaskNotFound
	}

	// a task may span two dates
	uc.days.Purge()
	return n, nil
}
