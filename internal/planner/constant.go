package planner

import "time"

const (
	// DefaultTimezone is the civil timezone all planner times are read in.
	DefaultTimezone = "Asia/Kolkata"

	// SlotDuration is the width of one grid slot.
	SlotDuration = 30 * time.Minute
	// SlotsPerDay is 24 hours * 2 slots per hour.
	SlotsPerDay = 48
	// DefaultTaskDuration applies when a line carries a single time.
	DefaultTaskDuration = 30 * time.Minute

	DefaultPriority = PriorityMedium
	DefaultCategory = CategoryGeneral
)

var priorityNames = map[Priority]string{
	PriorityCritical: "Critical",
	PriorityHigh:     "High",
	PriorityMedium:   "Medium",
	PriorityLow:      "Low",
}

// priorityRanks orders priorities; lower sorts first.
var priorityRanks = map[Priority]int{
	PriorityCritical: 1,
	PriorityHigh:     2,
	PriorityMedium:   3,
	PriorityLow:      4,
}

var categoryNames = map[Category]string{
	CategoryOffice:   "Office",
	CategoryPersonal: "Personal",
	CategoryFamily:   "Family",
	CategoryTravel:   "Travel",
	CategoryHealth:   "Health",
	CategoryFinance:  "Finance",
	CategoryGeneral:  "General",
}

// categoryIcons is display-only.
var categoryIcons = map[Category]string{
	CategoryOffice:   "💼",
	CategoryPersonal: "🙂",
	CategoryFamily:   "👪",
	CategoryTravel:   "✈️",
	CategoryHealth:   "💪",
	CategoryFinance:  "💰",
	CategoryGeneral:  "📌",
}

// quadrantLabels maps Eisenhower quadrants to the action they call for.
var quadrantLabels = map[Quadrant]string{
	Q1: "do",
	Q2: "schedule",
	Q3: "delegate",
	Q4: "eliminate",
}
