package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"daily-planner/internal/journal/repository"
	"daily-planner/internal/journal/repository/rest"
	"daily-planner/internal/model"
	pkgLog "daily-planner/pkg/log"
	"daily-planner/pkg/restdb"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func newRepo(t *testing.T, h http.HandlerFunc) repository.Repository {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return rest.New(restdb.NewClient(ts.URL, "key", ""), ist, pkgLog.NewNop())
}

var day = time.Date(2026, 1, 10, 0, 0, 0, 0, ist)

func TestListHabits(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/planner_habits" || q.Get("date") != "eq.2026-01-10" || q.Get("order") != "name.asc" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		w.Write([]byte(`[{"date":"2026-01-10","name":"Read","done":true},{"date":"2026-01-10","name":"Walk","done":false}]`))
	})

	habits, err := repo.ListHabits(context.Background(), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(habits) != 2 || habits[0] != (model.Habit{Name: "Read", Done: true}) || habits[1].Done {
		t.Errorf("unexpected habits: %+v", habits)
	}
}

func TestSetHabit(t *testing.T) {
	var got []map[string]any
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Query().Get("on_conflict") != "date,name" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.RawQuery)
		}
		if r.Header.Get("Prefer") != "resolution=merge-duplicates,return=minimal" {
			t.Errorf("unexpected Prefer: %s", r.Header.Get("Prefer"))
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	})

	err := repo.SetHabit(context.Background(), repository.SetHabitOptions{Date: day, Name: "Read", Done: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0]["date"] != "2026-01-10" || got[0]["name"] != "Read" || got[0]["done"] != true {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestGetReflection(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/planner_reflections" || r.URL.Query().Get("limit") != "1" {
				t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
			}
			w.Write([]byte(`[{"date":"2026-01-10","text":"calm day","updated_at":"2026-01-10T16:30:00Z"}]`))
		})
		ref, err := repo.GetReflection(context.Background(), day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ref.Text != "calm day" || ref.Date.Location() != ist || ref.UpdatedAt.Hour() != 22 {
			t.Errorf("unexpected reflection: %+v", ref)
		}
	})

	t.Run("missing", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})
		ref, err := repo.GetReflection(context.Background(), day)
		if err != nil || ref.Text != "" || !ref.Date.Equal(day) {
			t.Errorf("expected empty reflection, got %+v, %v", ref, err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		if _, err := repo.GetReflection(context.Background(), day); err == nil {
			t.Error("expected error")
		}
	})
}

func TestSaveReflection(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("on_conflict") != "date" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		var rows []map[string]any
		json.NewDecoder(r.Body).Decode(&rows)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rows)
	})

	updated := time.Date(2026, 1, 10, 21, 0, 0, 0, ist)
	ref, err := repo.SaveReflection(context.Background(), model.Reflection{Date: day, Text: "# Wins", UpdatedAt: updated})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Text != "# Wins" || !ref.UpdatedAt.Equal(updated) || !ref.Date.Equal(day) {
		t.Errorf("unexpected reflection: %+v", ref)
	}
}
