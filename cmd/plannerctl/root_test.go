package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseText(t *testing.T) {
	out, err := run(t, "parse", "-f", "text", "--date", "2026-03-04", "Yoga @6am to 7am $High %Health #fitness Q2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, want := range []string{
		"title:    Yoga",
		"date:     2026-03-04 (Wed)",
		"time:     06:00-07:00 (1h0m0s)",
		"priority: High (rank 2)",
		"Health",
		"tags:     #fitness",
		"quadrant: Q2 schedule",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseJSON(t *testing.T) {
	out, err := run(t, "parse", "-d", "2026-03-04", "Dinner", "@7pm", "to", "9pm", "%family")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var got struct {
		Title    string `json:"title"`
		Date     string `json:"date"`
		Category string `json:"category"`
		Start    time.Time
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Title != "Dinner" || got.Date != "2026-03-04" || got.Category != "Family" {
		t.Errorf("unexpected task: %+v", got)
	}
	if got.Start.Hour() != 19 {
		t.Errorf("start hour = %d, want 19", got.Start.Hour())
	}
}

func TestSlots(t *testing.T) {
	out, err := run(t, "slots", "-f", "text", "--date", "2026-03-04", "Yoga @6am to 7am")
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	for _, want := range []string{"2026-03-04 #13 06:00-06:30 Yoga", "#14 06:30-07:00", "2 slot(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLenientFlag(t *testing.T) {
	if _, err := run(t, "parse", "-d", "2026-03-04", "Call @21"); err == nil {
		t.Error("strict mode should reject a bare 21")
	}
	out, err := run(t, "parse", "-f", "text", "--lenient", "-d", "2026-03-04", "Call @21")
	if err != nil {
		t.Fatalf("lenient parse: %v", err)
	}
	if !strings.Contains(out, "21:00-21:30") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing line", args: []string{"parse"}},
		{name: "no time", args: []string{"parse", "Read a book"}},
		{name: "bad date", args: []string{"parse", "-d", "2026-13-45", "Gym @6am"}},
		{name: "bad timezone", args: []string{"slots", "--tz", "Mars/Olympus", "Gym @6am"}},
		{name: "bad format", args: []string{"slots", "-f", "yaml", "Gym @6am"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
