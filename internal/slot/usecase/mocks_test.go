package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/slot/repository"
	"daily-planner/pkg/datemath"
	"daily-planner/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errStore = errors.New("store unavailable")

// mockRepo is an in-memory slot store keyed like the real one.
type mockRepo struct {
	slots     map[string]model.Slot
	err       error
	listCalls int
}

func newMockRepo() *mockRepo {
	return &mockRepo{slots: make(map[string]model.Slot)}
}

func slotKey(date time.Time, index int) string {
	return fmt.Sprintf("%s#%02d", dayKey(date), index)
}

func (m *mockRepo) UpsertSlots(ctx context.Context, slots []model.Slot) ([]model.Slot, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, s := range slots {
		m.slots[slotKey(s.Date, s.Index)] = s
	}
	return slots, nil
}

func (m *mockRepo) ListByDate(ctx context.Context, date time.Time) ([]model.Slot, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Slot
	for i := 1; i <= planner.SlotsPerDay; i++ {
		if s, ok := m.slots[slotKey(date, i)]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByRange(ctx context.Context, opt repository.ListByRangeOptions) ([]model.Slot, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Slot
	for d := opt.From; !d.After(opt.To); d = d.AddDate(0, 0, 1) {
		day, _ := m.ListByDate(ctx, d)
		out = append(out, day...)
	}
	return out, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, opt repository.UpdateStatusOptions) ([]model.Slot, error) {
	if m.err != nil {
		return nil, m.err
	}
	key := slotKey(opt.Date, opt.Index)
	s, ok := m.slots[key]
	if !ok {
		return nil, nil
	}
	s.Status = opt.Status
	m.slots[key] = s
	return []model.Slot{s}, nil
}

func (m *mockRepo) DeleteSlot(ctx context.Context, date time.Time, index int) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	key := slotKey(date, index)
	if _, ok := m.slots[key]; !ok {
		return 0, nil
	}
	delete(m.slots, key)
	return 1, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, taskID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for k, s := range m.slots {
		if s.TaskID == taskID {
			delete(m.slots, k)
			n++
		}
	}
	return n, nil
}

type mockCalendar struct {
	reqs []gcalendar.CreateEventRequest
	err  error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "ev1", HtmlLink: "https://calendar.example/ev1"}, nil
}

// newTestUseCase pins "now" to 2026-01-10 08:00 in Asia/Kolkata.
func newTestUseCase(t *testing.T, repo *mockRepo, cal Calendar) *implUseCase {
	t.Helper()
	dates, err := datemath.NewParser(planner.DefaultTimezone)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := newUseCase(&mockLogger{}, repo, planner.New(dates, planner.TimeModeStrict), dates, cal, Config{CalendarID: "primary"})
	uc.now = func() time.Time {
		return time.Date(2026, 1, 10, 8, 0, 0, 0, dates.Location())
	}
	return uc
}

func (uc *implUseCase) date(day int) time.Time {
	return time.Date(2026, 1, day, 0, 0, 0, 0, uc.dates.Location())
}
