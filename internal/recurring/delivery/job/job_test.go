package job

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/recurring"
	"daily-planner/pkg/datemath"
	pkgLog "daily-planner/pkg/log"
)

type mockUseCase struct {
	recurring.UseCase
	mu    sync.Mutex
	dates []time.Time
	err   error
}

func (m *mockUseCase) Apply(ctx context.Context, sc model.Scope, date time.Time) (recurring.ApplyOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dates = append(m.dates, date)
	return recurring.ApplyOutput{Date: date, Failures: []recurring.Failure{{TemplateID: "r1", Err: errors.New("x")}}}, m.err
}

func (m *mockUseCase) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.dates)
}

func newTestJob(t *testing.T, uc *mockUseCase) (*Job, *datemath.Parser) {
	t.Helper()
	dates, err := datemath.NewParser(planner.DefaultTimezone)
	if err != nil {
		t.Fatal(err)
	}
	return New(pkgLog.NewNop(), uc, dates, time.Millisecond), dates
}

func TestTickOncePerDay(t *testing.T) {
	uc := &mockUseCase{}
	j, dates := newTestJob(t, uc)
	ctx := context.Background()

	now := dates.Date(2026, time.January, 10).Add(8 * time.Hour)
	j.now = func() time.Time { return now }

	j.tick(ctx)
	now = now.Add(time.Hour)
	j.tick(ctx)
	if uc.calls() != 1 {
		t.Fatalf("expected 1 apply on the same day, got %d", uc.calls())
	}
	if !uc.dates[0].Equal(dates.Date(2026, time.January, 10)) {
		t.Errorf("expected start of day, got %v", uc.dates[0])
	}

	now = dates.Date(2026, time.January, 11).Add(time.Minute)
	j.tick(ctx)
	if uc.calls() != 2 || uc.dates[1].Day() != 11 {
		t.Errorf("expected a new apply for the next day, got %v", uc.dates)
	}
}

func TestTickRetriesAfterError(t *testing.T) {
	uc := &mockUseCase{err: errors.New("store down")}
	j, dates := newTestJob(t, uc)
	j.now = func() time.Time { return dates.Date(2026, time.January, 10) }

	j.tick(context.Background())
	j.tick(context.Background())
	if uc.calls() != 2 {
		t.Errorf("expected a retry after a failed apply, got %d calls", uc.calls())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	uc := &mockUseCase{}
	j, _ := newTestJob(t, uc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for uc.calls() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if uc.calls() != 1 {
		t.Errorf("expected exactly one apply, got %d", uc.calls())
	}
}
