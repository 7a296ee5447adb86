package planner

import (
	"testing"
	"time"

	"daily-planner/pkg/datemath"
)

func newTestDates(t *testing.T) *datemath.Parser {
	t.Helper()
	dates, err := datemath.NewParser(DefaultTimezone)
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return dates
}

func day(dates *datemath.Parser, y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, dates.Location())
}

func clock(dates *datemath.Parser, y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, dates.Location())
}
