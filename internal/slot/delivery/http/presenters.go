package http

import (
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/slot"
	"daily-planner/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Line string `json:"line"`
	Date string `json:"date"` // optional, defaults to today
}

func (r createReq) toInput(date time.Time) slot.CreateInput {
	return slot.CreateInput{
		RawText: r.Line,
		UIDate:  date,
	}
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

// --- Response DTOs ---

type slotResp struct {
	ID            string             `json:"id,omitempty"`
	TaskID        string             `json:"task_id,omitempty"`
	Date          response.Date      `json:"date"`
	Index         int                `json:"index"`
	Start         string             `json:"start"`
	End           string             `json:"end"`
	Title         string             `json:"title"`
	Priority      planner.Priority   `json:"priority"`
	PriorityRank  int                `json:"priority_rank"`
	Category      planner.Category   `json:"category"`
	CategoryIcon  string             `json:"category_icon"`
	Tags          []string           `json:"tags"`
	Quadrant      planner.Quadrant   `json:"quadrant,omitempty"`
	QuadrantLabel string             `json:"quadrant_label,omitempty"`
	Status        planner.SlotStatus `json:"status"`
}

func newRecordResp(r planner.SlotRecord) slotResp {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return slotResp{
		Date:          response.Date(r.Date),
		Index:         r.Index,
		Start:         r.Start.Format("15:04"),
		End:           r.End.Format("15:04"),
		Title:         r.Title,
		Priority:      r.Priority,
		PriorityRank:  r.PriorityRank(),
		Category:      r.Category,
		CategoryIcon:  r.Category.Icon(),
		Tags:          tags,
		Quadrant:      r.Quadrant,
		QuadrantLabel: r.Quadrant.Label(),
		Status:        r.Status,
	}
}

func newSlotResp(s model.Slot) slotResp {
	resp := newRecordResp(s.SlotRecord)
	resp.ID = s.ID
	resp.TaskID = s.TaskID
	return resp
}

func newSlotResps(slots []model.Slot) []slotResp {
	out := make([]slotResp, len(slots))
	for i, s := range slots {
		out[i] = newSlotResp(s)
	}
	return out
}

type createResp struct {
	TaskID       string             `json:"task_id"`
	Task         planner.ParsedTask `json:"task"`
	Slots        []slotResp         `json:"slots"`
	CalendarLink string             `json:"calendar_link,omitempty"`
}

func (h *handler) newCreateResp(out slot.CreateOutput) createResp {
	return createResp{
		TaskID:       out.TaskID,
		Task:         out.Task,
		Slots:        newSlotResps(out.Slots),
		CalendarLink: out.CalendarLink,
	}
}

type parseResp struct {
	Task  planner.ParsedTask `json:"task"`
	Slots []slotResp         `json:"slots"`
}

func (h *handler) newParseResp(out slot.ParseOutput) parseResp {
	slots := make([]slotResp, len(out.Slots))
	for i, r := range out.Slots {
		slots[i] = newRecordResp(r)
	}
	return parseResp{Task: out.Task, Slots: slots}
}

type cellResp struct {
	Index int       `json:"index"`
	Start string    `json:"start"`
	End   string    `json:"end"`
	Slot  *slotResp `json:"slot"`
}

type dayResp struct {
	Date      response.Date `json:"date"`
	FreeSlots int           `json:"free_slots"`
	Cells     []cellResp    `json:"cells"`
}

func (h *handler) newDayResp(view slot.DayView) dayResp {
	resp := dayResp{
		Date:  response.Date(view.Date),
		Cells: make([]cellResp, len(view.Cells)),
	}
	for i, c := range view.Cells {
		cell := cellResp{
			Index: c.Index,
			Start: c.Start.Format("15:04"),
			End:   c.End.Format("15:04"),
		}
		if c.Slot != nil {
			s := newSlotResp(*c.Slot)
			cell.Slot = &s
		} else {
			resp.FreeSlots++
		}
		resp.Cells[i] = cell
	}
	return resp
}

type summaryResp struct {
	Date           response.Date  `json:"date"`
	TotalSlots     int            `json:"total_slots"`
	Tasks          int            `json:"tasks"`
	ByStatus       map[string]int `json:"by_status"`
	ByCategory     map[string]int `json:"by_category"`
	ByPriority     map[string]int `json:"by_priority"`
	MinutesPlanned int            `json:"minutes_planned"`
	MinutesDone    int            `json:"minutes_done"`
	CompletionRate float64        `json:"completion_rate"`
}

func newSummaryResp(s slot.DaySummary) summaryResp {
	resp := summaryResp{
		Date:           response.Date(s.Date),
		TotalSlots:     s.TotalSlots,
		Tasks:          s.Tasks,
		ByStatus:       make(map[string]int, len(s.ByStatus)),
		ByCategory:     make(map[string]int, len(s.ByCategory)),
		ByPriority:     make(map[string]int, len(s.ByPriority)),
		MinutesPlanned: s.MinutesPlanned,
		MinutesDone:    s.MinutesDone,
		CompletionRate: s.CompletionRate(),
	}
	for k, v := range s.ByStatus {
		resp.ByStatus[string(k)] = v
	}
	for k, v := range s.ByCategory {
		resp.ByCategory[k.String()] = v
	}
	for k, v := range s.ByPriority {
		resp.ByPriority[k.String()] = v
	}
	return resp
}

type weekResp struct {
	WeekStart response.Date `json:"week_start"`
	Days      []summaryResp `json:"days"`
	Total     summaryResp   `json:"total"`
}

func (h *handler) newWeekResp(w slot.WeekSummary) weekResp {
	days := make([]summaryResp, len(w.Days))
	for i, d := range w.Days {
		days[i] = newSummaryResp(d)
	}
	return weekResp{
		WeekStart: response.Date(w.WeekStart),
		Days:      days,
		Total:     newSummaryResp(w.Total),
	}
}

type deleteTaskResp struct {
	Deleted int `json:"deleted"`
}
