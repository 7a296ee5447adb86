package rest

import (
	"context"
	"time"

	"daily-planner/internal/model"
	"daily-planner/pkg/restdb"
)

type templateRow struct {
	ID        string    `json:"id"`
	Line      string    `json:"line"`
	Rule      string    `json:"rule"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *implRepository) Create(ctx context.Context, t model.Template) (model.Template, error) {
	row := templateRow{ID: t.ID, Line: t.Line, Rule: t.Rule, CreatedAt: t.CreatedAt}

	var stored []templateRow
	if err := r.client.Upsert(ctx, templateTable, templateConflictOn, []templateRow{row}, &stored); err != nil {
		r.l.Errorf(ctx, "recurring repository: failed to create template: %v", err)
		return model.Template{}, err
	}
	if len(stored) == 0 {
		return t, nil
	}
	return r.toTemplate(stored[0]), nil
}

func (r *implRepository) List(ctx context.Context) ([]model.Template, error) {
	var rows []templateRow
	if err := r.client.Select(ctx, templateTable, restdb.NewQuery().Order("created_at.asc", "id.asc"), &rows); err != nil {
		r.l.Errorf(ctx, "recurring repository: failed to list templates: %v", err)
		return nil, err
	}

	templates := make([]model.Template, len(rows))
	for i, row := range rows {
		templates[i] = r.toTemplate(row)
	}
	return templates, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) (int, error) {
	return r.client.Delete(ctx, templateTable, restdb.NewQuery().Eq("id", id))
}

func (r *implRepository) toTemplate(row templateRow) model.Template {
	return model.Template{
		ID:        row.ID,
		Line:      row.Line,
		Rule:      row.Rule,
		CreatedAt: row.CreatedAt.In(r.loc),
	}
}
