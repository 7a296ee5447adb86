package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // the civil timezone must load on hosts without zoneinfo
)

// Parser converts relative date strings to absolute dates in one civil timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's civil timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var (
	reInDuration = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	reISODate    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Weekday looks up a lowercase English weekday name.
func Weekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// Parse converts a relative date string to the start of the matching day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.AddDays(baseTime, 1), nil
	case "yesterday":
		return p.AddDays(baseTime, -1), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.StartOfDay(baseTime), nil
}

// ParseDate accepts either an ISO date (YYYY-MM-DD) or a relative phrase understood by Parse.
// An empty string means today.
func (p *Parser) ParseDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return p.StartOfDay(now), nil
	}
	if reISODate.MatchString(value) {
		t, err := time.ParseInLocation("2006-01-02", value, p.location)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
		}
		return t, nil
	}
	return p.Parse(value, now)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := reInDuration.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.AddDays(baseTime, amount), nil
	case strings.HasPrefix(unit, "week"):
		return p.AddDays(baseTime, amount*7), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.In(p.location).AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
// The result is always strictly after baseTime's day: "next monday" on a Monday is a week later.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := Weekday(dayName)
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	return p.NextWeekday(baseTime, targetWeekday), nil
}

// NextWeekday returns the first day strictly after baseTime that falls on wd.
func (p *Parser) NextWeekday(baseTime time.Time, wd time.Weekday) time.Time {
	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(wd - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.AddDays(baseTime, daysUntil)
}

// AddDays returns the start of the day n calendar days after t.
func (p *Parser) AddDays(t time.Time, n int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, p.location)
}

// Date builds a civil date, clamping day into [1, last day of month].
func (p *Parser) Date(year int, month time.Month, day int) time.Time {
	if last := DaysIn(year, month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, p.location)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// WeekStart returns the Monday on or before t.
func (p *Parser) WeekStart(t time.Time) time.Time {
	day := p.StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return p.AddDays(day, -offset)
}
