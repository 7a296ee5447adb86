package usecase

import (
	"context"
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/recurring"
	"daily-planner/internal/slot"
)

func (uc *implUseCase) Apply(ctx context.Context, sc model.Scope, date time.Time) (recurring.ApplyOutput, error) {
	date = uc.dates.StartOfDay(date)
	out := recurring.ApplyOutput{Date: date}

	templates, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "recurring.usecase.Apply: List: %v", err)
		return out, err
	}

	sc.Source = model.SourceRecurring
	view, err := uc.slotUC.Day(ctx, sc, date)
	if err != nil {
		uc.l.Errorf(ctx, "recurring.usecase.Apply: Day: %v", err)
		return out, err
	}

	for _, tpl := range templates {
		rule, err := recurring.ParseRule(tpl.Rule)
		if err != nil {
			out.Failures = append(out.Failures, recurring.Failure{TemplateID: tpl.ID, Line: tpl.Line, Err: err})
			continue
		}
		if !rule.Matches(date) {
			continue
		}

		input := slot.CreateInput{RawText: tpl.Line, UIDate: date}
		parsed, err := uc.slotUC.Parse(ctx, sc, input)
		if err != nil {
			out.Failures = append(out.Failures, recurring.Failure{TemplateID: tpl.ID, Line: tpl.Line, Err: err})
			continue
		}
		if scheduled(view, parsed.Slots) {
			out.Skipped = append(out.Skipped, tpl.ID)
			continue
		}

		created, err := uc.slotUC.Create(ctx, sc, input)
		if err != nil {
			uc.l.Warnf(ctx, "recurring.usecase.Apply: template %s on %s: %v", tpl.ID, date.Format(time.DateOnly), err)
			out.Failures = append(out.Failures, recurring.Failure{TemplateID: tpl.ID, Line: tpl.Line, Err: err})
			continue
		}
		out.Applied = append(out.Applied, recurring.Applied{TemplateID: tpl.ID, Output: created})
	}

	uc.l.Infof(ctx, "recurring.usecase.Apply: %s applied=%d skipped=%d failed=%d",
		date.Format(time.DateOnly), len(out.Applied), len(out.Skipped), len(out.Failures))
	return out, nil
}

// scheduled reports whether every slot of a template on view's date already holds the
// template's title. Applying again would overwrite statuses set since.
func scheduled(view slot.DayView, records []planner.SlotRecord) bool {
	found := false
	for _, r := range records {
		if !r.Date.Equal(view.Date) || !planner.ValidSlotIndex(r.Index) || r.Index > len(view.Cells) {
			continue
		}
		cell := view.Cells[r.Index-1]
		if cell.Slot == nil || cell.Slot.Title != r.Title {
			return false
		}
		found = true
	}
	return found
}
