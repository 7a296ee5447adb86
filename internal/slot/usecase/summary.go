package usecase

import (
	"context"
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/slot"
	"daily-planner/internal/slot/repository"
)

// DaySummary aggregates the slots of date.
func (uc *implUseCase) DaySummary(ctx context.Context, sc model.Scope, date time.Time) (slot.DaySummary, error) {
	date = uc.dates.StartOfDay(date)

	slots, err := uc.repo.ListByDate(ctx, date)
	if err != nil {
		uc.l.Errorf(ctx, "slot.usecase.DaySummary: ListByDate: %v", err)
		return slot.DaySummary{}, err
	}
	return summarize(date, slots), nil
}

// WeekSummary aggregates the Monday-to-Sunday week containing date.
func (uc *implUseCase) WeekSummary(ctx context.Context, sc model.Scope, date time.Time) (slot.WeekSummary, error) {
	start := uc.dates.WeekStart(date)
	end := uc.dates.AddDays(start, 6)

	slots, err := uc.repo.ListByRange(ctx, repository.ListByRangeOptions{From: start, To: end})
	if err != nil {
		uc.l.Errorf(ctx, "slot.usecase.WeekSummary: ListByRange: %v", err)
		return slot.WeekSummary{}, err
	}

	byDay := make(map[string][]model.Slot, 7)
	for _, s := range slots {
		key := dayKey(s.Date)
		byDay[key] = append(byDay[key], s)
	}

	week := slot.WeekSummary{
		WeekStart: start,
		Days:      make([]slot.DaySummary, 7),
		Total:     summarize(start, slots),
	}
	for i := range week.Days {
		day := uc.dates.AddDays(start, i)
		week.Days[i] = summarize(day, byDay[dayKey(day)])
	}
	return week, nil
}
