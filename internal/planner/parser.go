package planner

import (
	"time"

	"daily-planner/pkg/datemath"
)

// Parser turns planner lines into ParsedTasks. It holds no mutable state and is safe
// for concurrent use.
type Parser struct {
	dates *datemath.Parser
	mode  TimeMode
}

// New creates a Parser reading times in the dates parser's timezone.
func New(dates *datemath.Parser, mode TimeMode) *Parser {
	return &Parser{
		dates: dates,
		mode:  mode,
	}
}

// Location returns the civil timezone of the parser.
func (p *Parser) Location() *time.Location {
	return p.dates.Location()
}

// Mode returns the time mode of the parser.
func (p *Parser) Mode() TimeMode {
	return p.mode
}

// Parse resolves one line against uiDate, the day currently shown to the user.
// Any malformed time rejects the whole line with an *Error.
func (p *Parser) Parse(rawLine string, uiDate time.Time) (ParsedTask, error) {
	text := normalize(rawLine)

	date := resolveDate(text, uiDate, p.dates)

	start, end, err := resolveTimeRange(text, date, p.Location(), p.mode)
	if err != nil {
		return ParsedTask{}, err
	}

	meta := extractMetadata(text)

	return newParsedTask(date, start, end, meta)
}
