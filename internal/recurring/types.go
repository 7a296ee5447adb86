package recurring

import (
	"fmt"
	"strings"
	"time"

	"daily-planner/internal/slot"
	"daily-planner/pkg/datemath"
)

// RuleKind selects which dates a template applies to.
type RuleKind uint8

const (
	RuleDaily RuleKind = iota + 1
	RuleWeekdays
	RuleWeekly
)

const weeklyPrefix = "weekly:"

// Rule is a parsed template rule: "daily", "weekdays" or "weekly:<weekday>".
type Rule struct {
	Kind    RuleKind
	Weekday time.Weekday // RuleWeekly only
}

// ParseRule parses a rule case-insensitively.
func ParseRule(s string) (Rule, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "daily":
		return Rule{Kind: RuleDaily}, nil
	case s == "weekdays":
		return Rule{Kind: RuleWeekdays}, nil
	case strings.HasPrefix(s, weeklyPrefix):
		wd, ok := datemath.Weekday(strings.TrimPrefix(s, weeklyPrefix))
		if !ok {
			return Rule{}, fmt.Errorf("%w: unknown weekday in %q", ErrInvalidRule, s)
		}
		return Rule{Kind: RuleWeekly, Weekday: wd}, nil
	}
	return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
}

// Matches reports whether the rule applies to date's weekday.
func (r Rule) Matches(date time.Time) bool {
	wd := date.Weekday()
	switch r.Kind {
	case RuleDaily:
		return true
	case RuleWeekdays:
		return wd != time.Saturday && wd != time.Sunday
	case RuleWeekly:
		return wd == r.Weekday
	}
	return false
}

func (r Rule) String() string {
	switch r.Kind {
	case RuleDaily:
		return "daily"
	case RuleWeekdays:
		return "weekdays"
	case RuleWeekly:
		return weeklyPrefix + strings.ToLower(r.Weekday.String())
	}
	return ""
}

// CreateInput is a new template.
type CreateInput struct {
	Line string
	Rule string
}

// Applied is a template scheduled on a date.
type Applied struct {
	TemplateID string
	Output     slot.CreateOutput
}

// Failure is a template that could not be scheduled on a date.
type Failure struct {
	TemplateID string
	Line       string
	Err        error
}

// ApplyOutput reports one Apply run. Failures never abort the remaining templates.
// Skipped lists templates whose slots were already on the date.
type ApplyOutput struct {
	Date     time.Time
	Applied  []Applied
	Skipped  []string
	Failures []Failure
}
