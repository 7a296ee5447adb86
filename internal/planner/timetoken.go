package planner

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reClockTime = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	// 24-hour fallback: "21", "7", "21:30"
	reBareHour = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\b`)
)

// parseTimeToken reads one time expression from token and places it on date in loc.
// Strict mode requires an am/pm marker; lenient mode falls back to a bare 0-23 hour.
func parseTimeToken(token string, date time.Time, loc *time.Location, mode TimeMode) (time.Time, error) {
	token = strings.TrimSpace(token)

	if m := reClockTime.FindStringSubmatch(token); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, err := parseMinute(m[2])
		if err != nil || hour < 1 || hour > 12 {
			return time.Time{}, newError(ErrInvalidTimeToken, token, "hour must be 1-12 and minute 0-59")
		}
		hour %= 12
		if strings.EqualFold(m[3], "pm") {
			hour += 12
		}
		return atClock(date, loc, hour, minute), nil
	}

	m := reBareHour.FindStringSubmatch(token)
	if m == nil {
		return time.Time{}, newError(ErrInvalidTimeToken, token, "no time found")
	}
	if mode != TimeModeLenient {
		return time.Time{}, newError(ErrInvalidTimeToken, token, "add am or pm")
	}

	hour, _ := strconv.Atoi(m[1])
	minute, err := parseMinute(m[2])
	if err != nil || hour > 23 {
		return time.Time{}, newError(ErrInvalidTimeToken, token, "hour must be 0-23 and minute 0-59")
	}
	return atClock(date, loc, hour, minute), nil
}

func parseMinute(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	minute, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if minute > 59 {
		return 0, ErrInvalidTimeToken
	}
	return minute, nil
}

func atClock(date time.Time, loc *time.Location, hour, minute int) time.Time {
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc)
}
