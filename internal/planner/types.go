package planner

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Priority is one of Critical, High, Medium, Low.
type Priority uint8

const (
	PriorityCritical Priority = iota + 1
	PriorityHigh
	PriorityMedium
	PriorityLow
)

// ParsePriority matches a priority name case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	for p, name := range priorityNames {
		if strings.EqualFold(name, s) {
			return p, true
		}
	}
	return 0, false
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Priority(%d)", uint8(p))
}

// Rank is the fixed sort position of p, 1 being most urgent.
func (p Priority) Rank() int {
	return priorityRanks[p]
}

func (p Priority) MarshalText() ([]byte, error) {
	if _, ok := priorityNames[p]; !ok {
		return nil, fmt.Errorf("planner: invalid priority %d", uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(b []byte) error {
	v, ok := ParsePriority(string(b))
	if !ok {
		return fmt.Errorf("planner: unknown priority %q", b)
	}
	*p = v
	return nil
}

// Category is one of the fixed task areas.
type Category uint8

const (
	CategoryOffice Category = iota + 1
	CategoryPersonal
	CategoryFamily
	CategoryTravel
	CategoryHealth
	CategoryFinance
	CategoryGeneral
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryOffice, CategoryPersonal, CategoryFamily, CategoryTravel,
		CategoryHealth, CategoryFinance, CategoryGeneral,
	}
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for c, name := range categoryNames {
		if strings.EqualFold(name, s) {
			return c, true
		}
	}
	return 0, false
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Icon returns the display glyph of c.
func (c Category) Icon() string {
	return categoryIcons[c]
}

func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryNames[c]; !ok {
		return nil, fmt.Errorf("planner: invalid category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, ok := ParseCategory(string(b))
	if !ok {
		return fmt.Errorf("planner: unknown category %q", b)
	}
	*c = v
	return nil
}

// Quadrant is an Eisenhower-matrix cell. The zero value means no quadrant.
type Quadrant uint8

const (
	QuadrantNone Quadrant = iota
	Q1
	Q2
	Q3
	Q4
)

// ParseQuadrant accepts "Q1".."Q4" in any case; "" is QuadrantNone.
func ParseQuadrant(s string) (Quadrant, bool) {
	if s == "" {
		return QuadrantNone, true
	}
	if len(s) == 2 && (s[0] == 'q' || s[0] == 'Q') && s[1] >= '1' && s[1] <= '4' {
		return Quadrant(s[1] - '0'), true
	}
	return QuadrantNone, false
}

func (q Quadrant) String() string {
	if q == QuadrantNone {
		return ""
	}
	return fmt.Sprintf("Q%d", uint8(q))
}

// Label is the semantic action of q ("do", "schedule", ...), "" when absent.
func (q Quadrant) Label() string {
	return quadrantLabels[q]
}

func (q Quadrant) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

func (q *Quadrant) UnmarshalText(b []byte) error {
	v, ok := ParseQuadrant(string(b))
	if !ok {
		return fmt.Errorf("planner: unknown quadrant %q", b)
	}
	*q = v
	return nil
}

// TimeMode selects how bare numbers in time expressions are treated.
type TimeMode uint8

const (
	// TimeModeStrict only accepts am/pm qualified times.
	TimeModeStrict TimeMode = iota
	// TimeModeLenient also accepts bare 24-hour numbers such as "21".
	TimeModeLenient
)

// ParseTimeMode accepts "strict" or "lenient".
func ParseTimeMode(s string) (TimeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return TimeModeStrict, nil
	case "lenient":
		return TimeModeLenient, nil
	}
	return TimeModeStrict, fmt.Errorf("planner: unknown time mode %q", s)
}

func (m TimeMode) String() string {
	if m == TimeModeLenient {
		return "lenient"
	}
	return "strict"
}

// ParsedTask is one planner line resolved to a dated, timed task.
// Build it with Parser.Parse; End is always after Start.
type ParsedTask struct {
	Title    string
	Date     time.Time
	Start    time.Time
	End      time.Time
	Priority Priority
	Category Category
	Tags     []string
	Quadrant Quadrant
}

func newParsedTask(date, start, end time.Time, meta metadata) (ParsedTask, error) {
	if !end.After(start) {
		return ParsedTask{}, newError(ErrInvalidTimeOrder, "", fmt.Sprintf("%s is not after %s", end.Format("15:04"), start.Format("15:04")))
	}
	return ParsedTask{
		Title:    meta.title,
		Date:     date,
		Start:    start,
		End:      end,
		Priority: meta.priority,
		Category: meta.category,
		Tags:     slices.Clone(meta.tags),
		Quadrant: meta.quadrant,
	}, nil
}

// PriorityRank derives from Priority through the fixed rank table.
func (t ParsedTask) PriorityRank() int {
	return t.Priority.Rank()
}

// Duration is End - Start.
func (t ParsedTask) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// HasTag reports whether tag (lowercase) is present.
func (t ParsedTask) HasTag(tag string) bool {
	_, found := slices.BinarySearch(t.Tags, tag)
	return found
}

type parsedTaskJSON struct {
	Title         string    `json:"title"`
	Date          string    `json:"date"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Priority      Priority  `json:"priority"`
	PriorityRank  int       `json:"priority_rank"`
	Category      Category  `json:"category"`
	Tags          []string  `json:"tags"`
	Quadrant      Quadrant  `json:"quadrant,omitempty"`
	QuadrantLabel string    `json:"quadrant_label,omitempty"`
}

func (t ParsedTask) MarshalJSON() ([]byte, error) {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(parsedTaskJSON{
		Title:         t.Title,
		Date:          t.Date.Format("2006-01-02"),
		Start:         t.Start,
		End:           t.End,
		Priority:      t.Priority,
		PriorityRank:  t.PriorityRank(),
		Category:      t.Category,
		Tags:          tags,
		Quadrant:      t.Quadrant,
		QuadrantLabel: t.Quadrant.Label(),
	})
}

// SlotStatus is the lifecycle state of a slot.
type SlotStatus string

const (
	StatusOpen    SlotStatus = "open"
	StatusDone    SlotStatus = "done"
	StatusSkipped SlotStatus = "skipped"
)

// ParseSlotStatus validates s.
func ParseSlotStatus(s string) (SlotStatus, bool) {
	switch st := SlotStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusOpen, StatusDone, StatusSkipped:
		return st, true
	}
	return "", false
}

// SlotRecord is one half-open grid interval of a task.
type SlotRecord struct {
	Date     time.Time  `json:"date"`
	Index    int        `json:"index"` // 1-based within Date
	Start    time.Time  `json:"start"`
	End      time.Time  `json:"end"`
	Title    string     `json:"title"`
	Priority Priority   `json:"priority"`
	Category Category   `json:"category"`
	Tags     []string   `json:"tags"`
	Quadrant Quadrant   `json:"quadrant,omitempty"`
	Status   SlotStatus `json:"status"`
}

// PriorityRank derives from Priority through the fixed rank table.
func (s SlotRecord) PriorityRank() int {
	return s.Priority.Rank()
}

// Duration is End - Start.
func (s SlotRecord) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
