package rest

import (
	"context"
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/slot/repository"
	"daily-planner/pkg/restdb"
)

func (r *implRepository) UpsertSlots(ctx context.Context, slots []model.Slot) ([]model.Slot, error) {
	if len(slots) == 0 {
		return nil, nil
	}

	rows := make([]slotRow, len(slots))
	for i, s := range slots {
		rows[i] = toRow(s)
	}

	var stored []slotRow
	if err := r.client.Upsert(ctx, slotTable, slotConflictOn, rows, &stored); err != nil {
		r.l.Errorf(ctx, "slot repository: failed to upsert %d slots: %v", len(rows), err)
		return nil, err
	}
	return r.toSlots(stored)
}

func (r *implRepository) ListByDate(ctx context.Context, date time.Time) ([]model.Slot, error) {
	q := restdb.NewQuery().
		Eq("date", date.Format(dateLayout)).
		Order("slot_index.asc")

	var rows []slotRow
	if err := r.client.Select(ctx, slotTable, q, &rows); err != nil {
		r.l.Errorf(ctx, "slot repository: failed to list %s: %v", date.Format(dateLayout), err)
		return nil, err
	}
	return r.toSlots(rows)
}

func (r *implRepository) ListByRange(ctx context.Context, opt repository.ListByRangeOptions) ([]model.Slot, error) {
	q := restdb.NewQuery().
		Gte("date", opt.From.Format(dateLayout)).
		Lte("date", opt.To.Format(dateLayout)).
		Order("date.asc", "slot_index.asc")

	var rows []slotRow
	if err := r.client.Select(ctx, slotTable, q, &rows); err != nil {
		r.l.Errorf(ctx, "slot repository: failed to list range: %v", err)
		return nil, err
	}
	return r.toSlots(rows)
}

func (r *implRepository) UpdateStatus(ctx context.Context, opt repository.UpdateStatusOptions) ([]model.Slot, error) {
	q := restdb.NewQuery().
		Eq("date", opt.Date.Format(dateLayout)).
		Eq("slot_index", opt.Index)

	var rows []slotRow
	if _, err := r.client.Update(ctx, slotTable, q, map[string]string{"status": string(opt.Status)}, &rows); err != nil {
		r.l.Errorf(ctx, "slot repository: failed to update status: %v", err)
		return nil, err
	}
	return r.toSlots(rows)
}

func (r *implRepository) DeleteSlot(ctx context.Context, date time.Time, index int) (int, error) {
	q := restdb.NewQuery().
		Eq("date", date.Format(dateLayout)).
		Eq("slot_index", index)
	return r.client.Delete(ctx, slotTable, q)
}

func (r *implRepository) DeleteTask(ctx context.Context, taskID string) (int, error) {
	return r.client.Delete(ctx, slotTable, restdb.NewQuery().Eq("task_id", taskID))
}
