package http

import (
	"daily-planner/internal/model"
	"daily-planner/internal/recurring"
	"daily-planner/pkg/response"
)

type createReq struct {
	Line string `json:"line" binding:"required"`
	Rule string `json:"rule" binding:"required"`
}

func (r createReq) toInput() recurring.CreateInput {
	return recurring.CreateInput{Line: r.Line, Rule: r.Rule}
}

type templateResp struct {
	ID        string            `json:"id"`
	Line      string            `json:"line"`
	Rule      string            `json:"rule"`
	CreatedAt response.DateTime `json:"created_at"`
}

type appliedResp struct {
	TemplateID string `json:"template_id"`
	TaskID     string `json:"task_id"`
	Title      string `json:"title"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Slots      int    `json:"slots"`
}

type failureResp struct {
	TemplateID string `json:"template_id"`
	Line       string `json:"line"`
	Error      string `json:"error"`
}

type applyResp struct {
	Date     response.Date `json:"date"`
	Applied  []appliedResp `json:"applied"`
	Skipped  []string      `json:"skipped"`
	Failures []failureResp `json:"failures"`
}

func newTemplateResp(t model.Template) templateResp {
	return templateResp{
		ID:        t.ID,
		Line:      t.Line,
		Rule:      t.Rule,
		CreatedAt: response.DateTime(t.CreatedAt),
	}
}

func newTemplateResps(ts []model.Template) []templateResp {
	out := make([]templateResp, len(ts))
	for i, t := range ts {
		out[i] = newTemplateResp(t)
	}
	return out
}

func newApplyResp(o recurring.ApplyOutput) applyResp {
	resp := applyResp{
		Date:     response.Date(o.Date),
		Applied:  make([]appliedResp, len(o.Applied)),
		Skipped:  append([]string{}, o.Skipped...),
		Failures: make([]failureResp, len(o.Failures)),
	}
	for i, a := range o.Applied {
		resp.Applied[i] = appliedResp{
			TemplateID: a.TemplateID,
			TaskID:     a.Output.TaskID,
			Title:      a.Output.Task.Title,
			Start:      a.Output.Task.Start.Format("15:04"),
			End:        a.Output.Task.End.Format("15:04"),
			Slots:      len(a.Output.Slots),
		}
	}
	for i, f := range o.Failures {
		resp.Failures[i] = failureResp{TemplateID: f.TemplateID, Line: f.Line, Error: failureMessage(f.Err)}
	}
	return resp
}
