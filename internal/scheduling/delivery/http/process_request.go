package http

import (
	"github.com/gin-gonic/gin"

	"later-reminder/internal/scheduling"
)

// planReq is the request body shared by the plan and apply endpoints.
type planReq struct {
	Input string `json:"input"`
	Title string `json:"title"`

	CalendarID string `json:"calendar_id"`
	From       string `json:"from"`
	To         string `json:"to"`
	List       string `json:"list"`

	DueTime             string `json:"due_time"`
	FixedSpacingMinutes int    `json:"fixed_spacing_minutes"`

	EventTypes      []string `json:"event_types"`
	SummaryKeywords []string `json:"summary_keywords"`
	WorkKeywords    []string `json:"work_keywords"`
	AllDayOnly      bool     `json:"all_day_only"`
}

func (r planReq) toInput() scheduling.PlanInput {
	return scheduling.PlanInput{
		Input:               r.Input,
		Title:               r.Title,
		CalendarID:          r.CalendarID,
		FromDay:             r.From,
		ToDay:               r.To,
		List:                r.List,
		DueTime:             r.DueTime,
		FixedSpacingMinutes: r.FixedSpacingMinutes,
		EventTypes:          r.EventTypes,
		SummaryKeywords:     r.SummaryKeywords,
		WorkKeywords:        r.WorkKeywords,
		AllDayOnly:          r.AllDayOnly,
	}
}

// processPlanReq binds the JSON request body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
