package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/recurring"
	"daily-planner/internal/slot"
	"daily-planner/pkg/datemath"
	pkgLog "daily-planner/pkg/log"
)

var errStore = errors.New("store unavailable")

type mockRepo struct {
	templates []model.Template
	err       error
}

func (m *mockRepo) Create(ctx context.Context, t model.Template) (model.Template, error) {
	if m.err != nil {
		return model.Template{}, m.err
	}
	m.templates = append(m.templates, t)
	return t, nil
}
func (m *mockRepo) List(ctx context.Context) ([]model.Template, error) {
	return m.templates, m.err
}
func (m *mockRepo) Delete(ctx context.Context, id string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	for i, t := range m.templates {
		if t.ID == id {
			m.templates = append(m.templates[:i], m.templates[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// mockSlotUseCase parses "tomorrow" as the next day and rejects lines containing "bad".
// Every line fills one slot whose index derives from the line length.
type mockSlotUseCase struct {
	slot.UseCase
	created []slot.CreateInput
	sources []model.Source
	dayErr  error
}

func slotIndex(line string) int {
	return 1 + len(line)%planner.SlotsPerDay
}

func (m *mockSlotUseCase) Day(ctx context.Context, sc model.Scope, date time.Time) (slot.DayView, error) {
	if m.dayErr != nil {
		return slot.DayView{}, m.dayErr
	}
	view := slot.DayView{Date: date, Cells: make([]slot.Cell, planner.SlotsPerDay)}
	for i := range view.Cells {
		view.Cells[i].Index = i + 1
	}
	for _, in := range m.created {
		if !in.UIDate.Equal(date) {
			continue
		}
		rec := planner.SlotRecord{Date: date, Index: slotIndex(in.RawText), Title: in.RawText}
		view.Cells[rec.Index-1].Slot = &model.Slot{ID: "s-" + in.RawText, SlotRecord: rec}
	}
	return view, nil
}

func (m *mockSlotUseCase) task(input slot.CreateInput) (planner.ParsedTask, error) {
	if strings.Contains(input.RawText, "bad") {
		return planner.ParsedTask{}, &planner.Error{Kind: planner.ErrTimeMissing}
	}
	date := input.UIDate
	if strings.Contains(input.RawText, "tomorrow") {
		date = date.AddDate(0, 0, 1)
	}
	return planner.ParsedTask{Title: input.RawText, Date: date}, nil
}

func (m *mockSlotUseCase) Parse(ctx context.Context, sc model.Scope, input slot.CreateInput) (slot.ParseOutput, error) {
	task, err := m.task(input)
	if err != nil {
		return slot.ParseOutput{}, err
	}
	rec := planner.SlotRecord{Date: task.Date, Index: slotIndex(input.RawText), Title: input.RawText}
	return slot.ParseOutput{Task: task, Slots: []planner.SlotRecord{rec}}, nil
}

func (m *mockSlotUseCase) Create(ctx context.Context, sc model.Scope, input slot.CreateInput) (slot.CreateOutput, error) {
	m.created = append(m.created, input)
	m.sources = append(m.sources, sc.Source)
	task, err := m.task(input)
	if err != nil {
		return slot.CreateOutput{}, err
	}
	return slot.CreateOutput{TaskID: "task-" + input.RawText, Task: task}, nil
}

func newTestUseCase(t *testing.T, repo *mockRepo, slotUC *mockSlotUseCase) *implUseCase {
	t.Helper()
	dates, err := datemath.NewParser(planner.DefaultTimezone)
	if err != nil {
		t.Fatal(err)
	}
	uc := newUseCase(pkgLog.NewNop(), repo, slotUC, dates)
	// Saturday 2026-01-10 08:00 IST
	uc.now = func() time.Time { return dates.Date(2026, time.January, 10).Add(8 * time.Hour) }
	return uc
}

var sc = model.Scope{Source: model.SourceWeb}

func TestParseRule(t *testing.T) {
	sat := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	fri := time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		in      string
		want    string
		wantErr bool
		matches [3]bool // sat, mon, fri
	}{
		{"daily", "daily", false, [3]bool{true, true, true}},
		{" Weekdays ", "weekdays", false, [3]bool{false, true, true}},
		{"weekly:Friday", "weekly:friday", false, [3]bool{false, false, true}},
		{"weekly:saturday", "weekly:saturday", false, [3]bool{true, false, false}},
		{"weekly:funday", "", true, [3]bool{}},
		{"monthly", "", true, [3]bool{}},
		{"", "", true, [3]bool{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			rule, err := recurring.ParseRule(tt.in)
			if tt.wantErr {
				if !errors.Is(err, recurring.ErrInvalidRule) {
					t.Errorf("expected ErrInvalidRule, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rule.String() != tt.want {
				t.Errorf("String() = %q, want %q", rule.String(), tt.want)
			}
			for i, d := range []time.Time{sat, mon, fri} {
				if rule.Matches(d) != tt.matches[i] {
					t.Errorf("Matches(%s) = %v", d.Weekday(), !tt.matches[i])
				}
			}
		})
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   recurring.CreateInput
		repoErr error
		wantErr error
	}{
		{"ok", recurring.CreateInput{Line: "  Standup @9:30am  ", Rule: "Weekdays"}, nil, nil},
		{"empty line", recurring.CreateInput{Line: " ", Rule: "daily"}, nil, recurring.ErrEmptyLine},
		{"bad rule", recurring.CreateInput{Line: "Gym @6am", Rule: "yearly"}, nil, recurring.ErrInvalidRule},
		{"unparseable line", recurring.CreateInput{Line: "bad line", Rule: "daily"}, nil, planner.ErrTimeMissing},
		{"dated line", recurring.CreateInput{Line: "Gym tomorrow @6am", Rule: "daily"}, nil, recurring.ErrDatedLine},
		{"store error", recurring.CreateInput{Line: "Gym @6am", Rule: "daily"}, errStore, errStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{err: tt.repoErr}
			uc := newTestUseCase(t, repo, &mockSlotUseCase{})

			tpl, err := uc.Create(ctx, sc, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				if len(repo.templates) != 0 {
					t.Error("nothing must be stored on error")
				}
				return
			}
			if tpl.ID == "" || tpl.Line != "Standup @9:30am" || tpl.Rule != "weekdays" || tpl.CreatedAt.IsZero() {
				t.Errorf("unexpected template: %+v", tpl)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{templates: []model.Template{{ID: "r1"}}}
	uc := newTestUseCase(t, repo, &mockSlotUseCase{})

	if err := uc.Delete(ctx, sc, "r1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(ctx, sc, "r1"); !errors.Is(err, recurring.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, sc, " "); !errors.Is(err, recurring.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound for a blank id, got %v", err)
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{templates: []model.Template{
		{ID: "daily", Line: "Meditate @6am", Rule: "daily"},
		{ID: "weekdays", Line: "Standup @9:30am", Rule: "weekdays"},
		{ID: "friday", Line: "Review @5pm", Rule: "weekly:friday"},
		{ID: "broken", Line: "bad line", Rule: "daily"},
		{ID: "corrupt", Line: "Gym @6am", Rule: "fortnightly"},
	}}
	slotUC := &mockSlotUseCase{}
	uc := newTestUseCase(t, repo, slotUC)

	friday := uc.dates.Date(2026, time.January, 16).Add(15 * time.Hour)
	out, err := uc.Apply(ctx, sc, friday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Date.Equal(uc.dates.Date(2026, time.January, 16)) {
		t.Errorf("expected the start of day, got %v", out.Date)
	}
	if len(out.Applied) != 3 {
		t.Fatalf("expected 3 applied, got %+v", out.Applied)
	}
	for i, id := range []string{"daily", "weekdays", "friday"} {
		if out.Applied[i].TemplateID != id {
			t.Errorf("applied[%d] = %s, want %s", i, out.Applied[i].TemplateID, id)
		}
	}
	if len(out.Failures) != 2 || out.Failures[0].TemplateID != "broken" || out.Failures[1].TemplateID != "corrupt" {
		t.Errorf("unexpected failures: %+v", out.Failures)
	}
	if !errors.Is(out.Failures[1].Err, recurring.ErrInvalidRule) {
		t.Errorf("expected rule error, got %v", out.Failures[1].Err)
	}

	for i, in := range slotUC.created {
		if !in.UIDate.Equal(out.Date) {
			t.Errorf("create %d used date %v", i, in.UIDate)
		}
		if slotUC.sources[i] != model.SourceRecurring {
			t.Errorf("create %d used source %s", i, slotUC.sources[i])
		}
	}

	saturday := uc.dates.Date(2026, time.January, 17)
	out, err = uc.Apply(ctx, sc, saturday)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Applied) != 1 || out.Applied[0].TemplateID != "daily" {
		t.Errorf("expected only the daily template on saturday, got %+v", out.Applied)
	}

	repo.err = errStore
	if _, err := uc.Apply(ctx, sc, saturday); !errors.Is(err, errStore) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestApplySkipsScheduledTemplates(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{templates: []model.Template{
		{ID: "daily", Line: "Meditate @6am", Rule: "daily"},
		{ID: "weekdays", Line: "Standup @9:30am", Rule: "weekdays"},
		{ID: "friday", Line: "Review @5pm", Rule: "weekly:friday"},
	}}
	slotUC := &mockSlotUseCase{}
	uc := newTestUseCase(t, repo, slotUC)
	friday := uc.dates.Date(2026, time.January, 16)

	if out, err := uc.Apply(ctx, sc, friday); err != nil || len(out.Applied) != 3 {
		t.Fatalf("first apply: %+v %v", out, err)
	}

	out, err := uc.Apply(ctx, sc, friday)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if len(out.Applied) != 0 || len(out.Skipped) != 3 {
		t.Errorf("expected everything skipped, got applied=%d skipped=%v", len(out.Applied), out.Skipped)
	}
	if len(slotUC.created) != 3 {
		t.Errorf("second apply must not write, got %d creates", len(slotUC.created))
	}

	slotUC.dayErr = errStore
	if _, err := uc.Apply(ctx, sc, friday.AddDate(0, 0, 1)); !errors.Is(err, errStore) {
		t.Errorf("expected day load error, got %v", err)
	}
}
