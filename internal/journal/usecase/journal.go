package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"daily-planner/internal/journal"
	"daily-planner/internal/journal/repository"
	"daily-planner/internal/model"
)

func (uc *implUseCase) Habits() []string {
	return slices.Clone(uc.habits)
}

// GetDay lists every configured habit, in configured order, with its flag for date.
func (uc *implUseCase) GetDay(ctx context.Context, sc model.Scope, date time.Time) (journal.Day, error) {
	stored, err := uc.repo.ListHabits(ctx, date)
	if err != nil {
		uc.l.Errorf(ctx, "journal.usecase.GetDay: ListHabits: %v", err)
		return journal.Day{}, err
	}
	done := make(map[string]bool, len(stored))
	for _, h := range stored {
		done[strings.ToLower(h.Name)] = h.Done
	}

	habits := make([]model.Habit, len(uc.habits))
	for i, name := range uc.habits {
		habits[i] = model.Habit{Name: name, Done: done[strings.ToLower(name)]}
	}

	ref, err := uc.repo.GetReflection(ctx, date)
	if err != nil {
		uc.l.Errorf(ctx, "journal.usecase.GetDay: GetReflection: %v", err)
		return journal.Day{}, err
	}

	return journal.Day{
		Date:       date,
		Habits:     habits,
		Reflection: journal.Reflection{Reflection: ref, HTML: renderMarkdown(ref.Text)},
	}, nil
}

func (uc *implUseCase) ToggleHabit(ctx context.Context, sc model.Scope, input journal.ToggleHabitInput) (model.Habit, error) {
	name, ok := uc.habitName(input.Name)
	if !ok {
		return model.Habit{}, journal.ErrUnknownHabit
	}

	stored, err := uc.repo.ListHabits(ctx, input.Date)
	if err != nil {
		uc.l.Errorf(ctx, "journal.usecase.ToggleHabit: ListHabits: %v", err)
		return model.Habit{}, err
	}
	done := false
	for _, h := range stored {
		if strings.EqualFold(h.Name, name) {
			done = h.Done
			break
		}
	}

	habit := model.Habit{Name: name, Done: !done}
	if err := uc.repo.SetHabit(ctx, repository.SetHabitOptions{
		Date: input.Date,
		Name: habit.Name,
		Done: habit.Done,
	}); err != nil {
		uc.l.Errorf(ctx, "journal.usecase.ToggleHabit: SetHabit: %v", err)
		return model.Habit{}, err
	}

	uc.l.Infof(ctx, "journal.usecase.ToggleHabit: %s %q on %s -> %t", sc.Source, name, input.Date.Format(time.DateOnly), habit.Done)
	return habit, nil
}

func (uc *implUseCase) SaveReflection(ctx context.Context, sc model.Scope, input journal.SaveReflectionInput) (journal.Reflection, error) {
	text := strings.TrimSpace(input.Text)
	if len(text) > maxReflectionBytes {
		return journal.Reflection{}, journal.ErrReflectionTooLong
	}

	ref, err := uc.repo.SaveReflection(ctx, model.Reflection{
		Date:      input.Date,
		Text:      text,
		UpdatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "journal.usecase.SaveReflection: %v", err)
		return journal.Reflection{}, err
	}
	return journal.Reflection{Reflection: ref, HTML: renderMarkdown(ref.Text)}, nil
}

// habitName resolves name case-insensitively to its configured spelling.
func (uc *implUseCase) habitName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, h := range uc.habits {
		if strings.EqualFold(h, name) {
			return h, true
		}
	}
	return "", false
}
