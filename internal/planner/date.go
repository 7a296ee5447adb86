package planner

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"daily-planner/pkg/datemath"
)

var (
	// on 15 Feb / on 15-feb / on 15/02 / on 15 february / on 15Feb
	reExplicitDate = regexp.MustCompile(
		`(?i)\bon\s+(\d{1,2})(?:[\s\-/]?([a-z]{3})[a-z]*|[\s\-/](\d{1,2}))\b`,
	)
	reTomorrow    = regexp.MustCompile(`(?i)\btomorrow\b`)
	reNextWeekday = regexp.MustCompile(`(?i)\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

var monthAbbrevs = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// resolveDate picks the task date. First match wins: explicit "on <day> <month>",
// then "tomorrow", then "next <weekday>", else defaultDate.
func resolveDate(text string, defaultDate time.Time, dates *datemath.Parser) time.Time {
	defaultDate = dates.StartOfDay(defaultDate)

	if m := reExplicitDate.FindStringSubmatch(text); m != nil {
		d, err := explicitDate(m, defaultDate, dates)
		if err != nil {
			return defaultDate
		}
		return d
	}

	if reTomorrow.MatchString(text) {
		return dates.AddDays(defaultDate, 1)
	}

	if m := reNextWeekday.FindStringSubmatch(text); m != nil {
		d, err := dates.Parse("next "+strings.ToLower(m[1]), defaultDate)
		if err != nil {
			return defaultDate
		}
		return d
	}

	return defaultDate
}

// explicitDate builds the date from a reExplicitDate match. The year always comes from
// defaultDate and the day is clamped to the month's length.
func explicitDate(m []string, defaultDate time.Time, dates *datemath.Parser) (time.Time, error) {
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 {
		return time.Time{}, errUnrecognizedMonth
	}

	month, err := parseMonth(m[2], m[3])
	if err != nil {
		return time.Time{}, err
	}

	return dates.Date(defaultDate.Year(), month, day), nil
}

func parseMonth(abbrev, numeric string) (time.Month, error) {
	if abbrev != "" {
		month, ok := monthAbbrevs[strings.ToLower(abbrev)]
		if !ok {
			return 0, errUnrecognizedMonth
		}
		return month, nil
	}
	n, err := strconv.Atoi(numeric)
	if err != nil || n < 1 || n > 12 {
		return 0, errUnrecognizedMonth
	}
	return time.Month(n), nil
}
