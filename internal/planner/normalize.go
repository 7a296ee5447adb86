package planner

import "regexp"

var (
	reOrdinal = regexp.MustCompile(`(?i)\b(\d+)(?:st|nd|rd|th)\b`)

	// "on 15 Feb, from 9am to 10am" → "from 9am to 10am on 15 Feb"
	reOnClauseThenRange = regexp.MustCompile(
		`(?i)\bon\s+([^,@$%#]+?),\s*(from\s+\d{1,2}(?::\d{2})?\s*[ap]m\s+to\s+\d{1,2}(?::\d{2})?\s*[ap]m)\b`,
	)
)

// normalize strips ordinal suffixes and moves a leading date clause behind its time range.
func normalize(text string) string {
	text = reOrdinal.ReplaceAllString(text, "$1")
	return reOnClauseThenRange.ReplaceAllString(text, "$2 on $1")
}
