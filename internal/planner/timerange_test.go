package planner

import (
	"errors"
	"testing"
	"time"
)

func TestResolveTimeRange(t *testing.T) {
	dates := newTestDates(t)
	loc := dates.Location()
	date := day(dates, 2026, time.March, 4)
	at := func(hh, mm int) time.Time { return clock(dates, 2026, time.March, 4, hh, mm) }

	tests := []struct {
		name      string
		text      string
		mode      TimeMode
		wantStart time.Time
		wantEnd   time.Time
		wantErr   error
	}{
		{name: "single time", text: "Workout @6am", wantStart: at(6, 0), wantEnd: at(6, 30)},
		{name: "single time with space", text: "Workout @ 6:15am", wantStart: at(6, 15), wantEnd: at(6, 45)},
		{name: "at range", text: "Deep work @9am to 11:30am", wantStart: at(9, 0), wantEnd: at(11, 30)},
		{name: "from range", text: "Deep work from 2pm to 4pm $High", wantStart: at(14, 0), wantEnd: at(16, 0)},
		{name: "range wins over earlier single", text: "Call @8am then from 10am to 11am", wantStart: at(10, 0), wantEnd: at(11, 0)},
		{name: "single late night crosses midnight", text: "Wind down @11:45pm", wantStart: at(23, 45), wantEnd: at(23, 45).Add(30 * time.Minute)},
		{name: "lenient range", text: "Gym from 18 to 19", mode: TimeModeLenient, wantStart: at(18, 0), wantEnd: at(19, 0)},
		{name: "strict rejects bare range", text: "Gym from 18 to 19", wantErr: ErrInvalidTimeToken},
		{name: "no marker", text: "Gym tomorrow", wantErr: ErrTimeMissing},
		{name: "at without time", text: "Meet @home", wantErr: ErrTimeMissing},
		{name: "end before start", text: "Gym from 10am to 9am", wantErr: ErrInvalidTimeOrder},
		{name: "end equals start", text: "Gym @9am to 9am", wantErr: ErrInvalidTimeOrder},
		{name: "bad end token", text: "Gym @9am to 13pm", wantErr: ErrInvalidTimeToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := resolveTimeRange(tt.text, date, loc, tt.mode)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("resolveTimeRange(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveTimeRange(%q) unexpected error: %v", tt.text, err)
			}
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("resolveTimeRange(%q) = [%v, %v), want [%v, %v)", tt.text, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
