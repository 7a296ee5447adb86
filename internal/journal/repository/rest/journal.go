package rest

import (
	"context"
	"fmt"
	"time"

	"daily-planner/internal/journal/repository"
	"daily-planner/internal/model"
	"daily-planner/pkg/restdb"
)

type habitRow struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

type reflectionRow struct {
	Date      string    `json:"date"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *implRepository) ListHabits(ctx context.Context, date time.Time) ([]model.Habit, error) {
	q := restdb.NewQuery().
		Eq("date", date.Format(dateLayout)).
		Order("name.asc")

	var rows []habitRow
	if err := r.client.Select(ctx, habitTable, q, &rows); err != nil {
		r.l.Errorf(ctx, "journal repository: failed to list habits of %s: %v", date.Format(dateLayout), err)
		return nil, err
	}

	habits := make([]model.Habit, len(rows))
	for i, row := range rows {
		habits[i] = model.Habit{Name: row.Name, Done: row.Done}
	}
	return habits, nil
}

func (r *implRepository) SetHabit(ctx context.Context, opt repository.SetHabitOptions) error {
	row := habitRow{
		Date: opt.Date.Format(dateLayout),
		Name: opt.Name,
		Done: opt.Done,
	}
	if err := r.client.Upsert(ctx, habitTable, habitConflictOn, []habitRow{row}, nil); err != nil {
		r.l.Errorf(ctx, "journal repository: failed to set habit %q: %v", opt.Name, err)
		return err
	}
	return nil
}

func (r *implRepository) GetReflection(ctx context.Context, date time.Time) (model.Reflection, error) {
	q := restdb.NewQuery().
		Eq("date", date.Format(dateLayout)).
		Limit(1)

	var rows []reflectionRow
	if err := r.client.Select(ctx, reflectionTable, q, &rows); err != nil {
		r.l.Errorf(ctx, "journal repository: failed to get reflection of %s: %v", date.Format(dateLayout), err)
		return model.Reflection{}, err
	}
	if len(rows) == 0 {
		return model.Reflection{Date: date}, nil
	}
	return r.toReflection(rows[0])
}

func (r *implRepository) SaveReflection(ctx context.Context, ref model.Reflection) (model.Reflection, error) {
	row := reflectionRow{
		Date:      ref.Date.Format(dateLayout),
		Text:      ref.Text,
		UpdatedAt: ref.UpdatedAt,
	}

	var stored []reflectionRow
	if err := r.client.Upsert(ctx, reflectionTable, reflectionConflictOn, []reflectionRow{row}, &stored); err != nil {
		r.l.Errorf(ctx, "journal repository: failed to save reflection of %s: %v", row.Date, err)
		return model.Reflection{}, err
	}
	if len(stored) == 0 {
		return ref, nil
	}
	return r.toReflection(stored[0])
}

func (r *implRepository) toReflection(row reflectionRow) (model.Reflection, error) {
	date, err := time.ParseInLocation(dateLayout, row.Date, r.loc)
	if err != nil {
		return model.Reflection{}, fmt.Errorf("journal repository: bad date %q: %w", row.Date, err)
	}
	return model.Reflection{
		Date:      date,
		Text:      row.Text,
		UpdatedAt: row.UpdatedAt.In(r.loc),
	}, nil
}
