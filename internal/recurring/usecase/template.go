package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"daily-planner/internal/model"
	"daily-planner/internal/recurring"
	"daily-planner/internal/slot"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input recurring.CreateInput) (model.Template, error) {
	line := strings.TrimSpace(input.Line)
	if line == "" {
		return model.Template{}, recurring.ErrEmptyLine
	}
	rule, err := recurring.ParseRule(input.Rule)
	if err != nil {
		return model.Template{}, err
	}

	today := uc.dates.StartOfDay(uc.now())
	parsed, err := uc.slotUC.Parse(ctx, sc, slot.CreateInput{RawText: line, UIDate: today})
	if err != nil {
		return model.Template{}, err
	}
	if !parsed.Task.Date.Equal(today) {
		return model.Template{}, recurring.ErrDatedLine
	}

	tpl, err := uc.repo.Create(ctx, model.Template{
		ID:        uuid.NewString(),
		Line:      line,
		Rule:      rule.String(),
		CreatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "recurring.usecase.Create: %v", err)
		return model.Template{}, err
	}

	uc.l.Infof(ctx, "recurring.usecase.Create: template %s (%s) %q", tpl.ID, tpl.Rule, tpl.Line)
	return tpl, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Template, error) {
	templates, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "recurring.usecase.List: %v", err)
		return nil, err
	}
	return templates, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return recurring.ErrTemplateNotFound
	}
	n, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "recurring.usecase.Delete: %v", err)
		return err
	}
	if n == 0 {
		return recurring.ErrTemplateNotFound
	}
	return nil
}
