package response

import (
	"encoding/json"
	"time"
)

// Resp wraps every JSON answer. ErrorCode 0 means success; Data is always
// present so clients can rely on the key.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Errors    any    `json:"errors,omitempty"`
}

// Date renders a planner date as DateFormat. The value keeps its own location,
// so a date built in the planner timezone never shifts to the host's.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// DateTime renders a timestamp as DateTimeFormat in its own location.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}
