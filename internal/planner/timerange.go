package planner

import (
	"regexp"
	"time"
)

const timeExpr = `\d{1,2}(?::\d{2})?(?:\s*[ap]m\b)?`

var (
	reTimeRange  = regexp.MustCompile(`(?i)(?:@|\bfrom\b)\s*(` + timeExpr + `)\s+to\s+(` + timeExpr + `)`)
	reSingleTime = regexp.MustCompile(`(?i)@\s*(` + timeExpr + `)`)
)

// resolveTimeRange finds "(@|from) <t> to <t>" or "@ <t>" in the full line.
// A single time lasts DefaultTaskDuration.
func resolveTimeRange(text string, date time.Time, loc *time.Location, mode TimeMode) (time.Time, time.Time, error) {
	var start, end time.Time

	if m := reTimeRange.FindStringSubmatch(text); m != nil {
		var err error
		if start, err = parseTimeToken(m[1], date, loc, mode); err != nil {
			return time.Time{}, time.Time{}, err
		}
		if end, err = parseTimeToken(m[2], date, loc, mode); err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else if m := reSingleTime.FindStringSubmatch(text); m != nil {
		var err error
		if start, err = parseTimeToken(m[1], date, loc, mode); err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = start.Add(DefaultTaskDuration)
	} else {
		return time.Time{}, time.Time{}, newError(ErrTimeMissing, "", "")
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, newError(ErrInvalidTimeOrder, "", end.Format("15:04")+" is not after "+start.Format("15:04"))
	}
	return start, end, nil
}
