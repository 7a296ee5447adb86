package http

import (
	"daily-planner/internal/journal"
	"daily-planner/internal/model"
	"daily-planner/pkg/response"
)

type reflectionReq struct {
	Text string `json:"text" form:"text"`
}

type habitResp struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
}

type reflectionResp struct {
	Text      string             `json:"text"`
	HTML      string             `json:"html"`
	UpdatedAt *response.DateTime `json:"updated_at,omitempty"`
}

type dayResp struct {
	Date       response.Date  `json:"date"`
	Habits     []habitResp    `json:"habits"`
	HabitsDone int            `json:"habits_done"`
	Reflection reflectionResp `json:"reflection"`
}

func newHabitResp(h model.Habit) habitResp {
	return habitResp{Name: h.Name, Done: h.Done}
}

func newReflectionResp(r journal.Reflection) reflectionResp {
	resp := reflectionResp{Text: r.Text, HTML: string(r.HTML)}
	if !r.UpdatedAt.IsZero() {
		at := response.DateTime(r.UpdatedAt)
		resp.UpdatedAt = &at
	}
	return resp
}

func (h *handler) newDayResp(d journal.Day) dayResp {
	habits := make([]habitResp, len(d.Habits))
	for i, hb := range d.Habits {
		habits[i] = newHabitResp(hb)
	}
	return dayResp{
		Date:       response.Date(d.Date),
		Habits:     habits,
		HabitsDone: d.HabitsDone(),
		Reflection: newReflectionResp(d.Reflection),
	}
}
