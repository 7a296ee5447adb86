package model

import "time"

// Template is a recurring planner line applied to every date its Rule matches.
type Template struct {
	ID        string
	Line      string
	Rule      string
	CreatedAt time.Time
}
