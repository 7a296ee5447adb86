package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/slot"
	pkgLog "daily-planner/pkg/log"
	pkgTelegram "daily-planner/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockSlotUseCase struct {
	mu      sync.Mutex
	lines   []string
	sources []model.Source
	day     slot.DayView
	err     map[string]error
}

func (m *mockSlotUseCase) Create(ctx context.Context, sc model.Scope, input slot.CreateInput) (slot.CreateOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, input.RawText)
	m.sources = append(m.sources, sc.Source)
	if err := m.err[input.RawText]; err != nil {
		return slot.CreateOutput{}, err
	}
	date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	task := planner.ParsedTask{
		Title:    strings.Fields(input.RawText)[0],
		Date:     date,
		Start:    date.Add(6 * time.Hour),
		End:      date.Add(7 * time.Hour),
		Priority: planner.PriorityMedium,
		Category: planner.CategoryGeneral,
		Tags:     []string{"fitness"},
		Quadrant: planner.Q1,
	}
	return slot.CreateOutput{TaskID: "t", Task: task, Slots: make([]model.Slot, 2)}, nil
}
func (m *mockSlotUseCase) Parse(ctx context.Context, sc model.Scope, input slot.CreateInput) (slot.ParseOutput, error) {
	return slot.ParseOutput{}, nil
}
func (m *mockSlotUseCase) Day(ctx context.Context, sc model.Scope, date time.Time) (slot.DayView, error) {
	return m.day, m.err["day"]
}
func (m *mockSlotUseCase) SetStatus(ctx context.Context, sc model.Scope, input slot.SetStatusInput) (model.Slot, error) {
	return model.Slot{}, nil
}
func (m *mockSlotUseCase) Delete(ctx context.Context, sc model.Scope, date time.Time, index int) error {
	return nil
}
func (m *mockSlotUseCase) DeleteTask(ctx context.Context, sc model.Scope, taskID string) (int, error) {
	return 0, nil
}
func (m *mockSlotUseCase) DaySummary(ctx context.Context, sc model.Scope, date time.Time) (slot.DaySummary, error) {
	return slot.DaySummary{}, nil
}
func (m *mockSlotUseCase) WeekSummary(ctx context.Context, sc model.Scope, date time.Time) (slot.WeekSummary, error) {
	return slot.WeekSummary{}, nil
}

// fakeTelegram records sendMessage payloads.
type fakeTelegram struct {
	mu   sync.Mutex
	sent []pkgTelegram.SendMessageRequest
}

func (f *fakeTelegram) handler(w http.ResponseWriter, r *http.Request) {
	var req pkgTelegram.SendMessageRequest
	json.NewDecoder(r.Body).Decode(&req)
	f.mu.Lock()
	f.sent = append(f.sent, req)
	f.mu.Unlock()
	w.Write([]byte(`{"ok":true}`))
}

func (f *fakeTelegram) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	for i, s := range f.sent {
		out[i] = s.Text
	}
	return out
}

func newTestHandler(t *testing.T, uc slot.UseCase, secret string) (*handler, *fakeTelegram) {
	t.Helper()
	fake := &fakeTelegram{}
	ts := httptest.NewServer(http.HandlerFunc(fake.handler))
	t.Cleanup(ts.Close)

	bot := pkgTelegram.NewBot("test")
	bot.SetAPIURL(ts.URL)
	return New(pkgLog.NewNop(), uc, bot, secret).(*handler), fake
}

func message(text string) *pkgTelegram.Message {
	return &pkgTelegram.Message{
		MessageID: 1,
		From:      &pkgTelegram.User{ID: 42, Username: "me"},
		Chat:      &pkgTelegram.Chat{ID: 99, Type: "private"},
		Text:      text,
	}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestProcessMessageLines(t *testing.T) {
	uc := &mockSlotUseCase{err: map[string]error{
		"Call mom":    &planner.Error{Kind: planner.ErrTimeMissing},
		"Broken @9am": errors.New("store down"),
	}}
	h, fake := newTestHandler(t, uc, "")

	err := h.processMessage(context.Background(), message("Gym @6am to 7am #fitness Q1\n\n  Call mom \nBroken @9am"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(uc.lines) != 3 || uc.lines[1] != "Call mom" {
		t.Errorf("expected 3 trimmed lines, got %q", uc.lines)
	}
	for _, s := range uc.sources {
		if s != model.SourceTelegram {
			t.Errorf("expected telegram source, got %s", s)
		}
	}

	texts := fake.texts()
	if len(texts) != 1 {
		t.Fatalf("expected a single reply, got %d", len(texts))
	}
	reply := texts[0]
	for _, want := range []string{"✅", "Gym", "06:00-07:00", "2 slot(s)", "Q1 do", "#fitness", "❌ Call mom", "time missing", "could not be saved"} {
		if !strings.Contains(reply, want) {
			t.Errorf("reply missing %q:\n%s", want, reply)
		}
	}
	if strings.Contains(reply, "store down") {
		t.Error("internal errors must not leak to the chat")
	}
}

func TestProcessMessageCommands(t *testing.T) {
	date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	cells := make([]slot.Cell, planner.SlotsPerDay)
	for i := range cells {
		cells[i] = slot.Cell{Index: i + 1, Start: planner.SlotStart(date, i+1)}
	}
	cells[12].Slot = &model.Slot{SlotRecord: planner.SlotRecord{Title: "Gym", Status: planner.StatusDone, Category: planner.CategoryHealth}}

	tests := []struct {
		name string
		uc   *mockSlotUseCase
		text string
		want string
	}{
		{"start", &mockSlotUseCase{}, "/start", "one task per line"},
		{"help", &mockSlotUseCase{}, "/help", "/today"},
		{"today", &mockSlotUseCase{day: slot.DayView{Date: date, Cells: cells}}, "/today", "✅ 06:00 💪 Gym"},
		{"today empty", &mockSlotUseCase{day: slot.DayView{Date: date, Cells: make([]slot.Cell, 48)}}, "/today", "Nothing planned yet."},
		{"today error", &mockSlotUseCase{err: map[string]error{"day": errors.New("x")}}, "/today", "Could not load"},
		{"today in group", &mockSlotUseCase{day: slot.DayView{Date: date, Cells: cells}}, "/today@PlannerBot", "✅ 06:00 💪 Gym"},
		{"help in group", &mockSlotUseCase{}, "/help@PlannerBot please", "one task per line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fake := newTestHandler(t, tt.uc, "")
			if err := h.processMessage(context.Background(), message(tt.text)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			texts := fake.texts()
			if len(texts) != 1 || !strings.Contains(texts[0], tt.want) {
				t.Errorf("expected reply containing %q, got %q", tt.want, texts)
			}
			if len(tt.uc.lines) != 0 {
				t.Error("commands must not create slots")
			}
		})
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/today", "/today"},
		{"/today@PlannerBot", "/today"},
		{"  /help@PlannerBot now", "/help"},
		{"Gym @6am", "Gym"},
		{"@6am Gym", ""},
	}
	for _, tt := range tests {
		if got := command(tt.text); got != tt.want {
			t.Errorf("command(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestProcessMessageLineCap(t *testing.T) {
	uc := &mockSlotUseCase{}
	h, fake := newTestHandler(t, uc, "")

	text := strings.Repeat("Gym @6am\n", maxLines+5)
	if err := h.processMessage(context.Background(), message(text)); err != nil {
		t.Fatal(err)
	}
	if len(uc.lines) != maxLines {
		t.Errorf("expected %d lines, got %d", maxLines, len(uc.lines))
	}
	if !strings.HasPrefix(fake.texts()[0], "Only the first") {
		t.Error("expected truncation notice")
	}
}

func TestHandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(h *handler, body, secret string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		if secret != "" {
			c.Request.Header.Set(pkgTelegram.HeaderSecretToken, secret)
		}
		h.HandleWebhook(c)
		return w
	}

	t.Run("bad secret", func(t *testing.T) {
		h, _ := newTestHandler(t, &mockSlotUseCase{}, "s3cret")
		if w := post(h, `{"update_id":1}`, "wrong"); w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("bad json", func(t *testing.T) {
		h, _ := newTestHandler(t, &mockSlotUseCase{}, "")
		if w := post(h, `{`, ""); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-message update ignored", func(t *testing.T) {
		h, _ := newTestHandler(t, &mockSlotUseCase{}, "s3cret")
		w := post(h, `{"update_id":1}`, "s3cret")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
			t.Errorf("expected ignored, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("message accepted and processed", func(t *testing.T) {
		uc := &mockSlotUseCase{}
		h, fake := newTestHandler(t, uc, "")
		w := post(h, `{"update_id":2,"message":{"message_id":1,"chat":{"id":5,"type":"private"},"text":"Gym @6am"}}`, "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "accepted") {
			t.Fatalf("expected accepted, got %d %s", w.Code, w.Body.String())
		}

		deadline := time.Now().Add(2 * time.Second)
		for len(fake.texts()) == 0 && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		if len(fake.texts()) != 1 {
			t.Fatal("expected background reply")
		}
	})
}
