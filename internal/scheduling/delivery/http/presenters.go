package http

import (
	"later-reminder/internal/scheduling"
)

// planResp is the rendered plan returned by both endpoints.
type planResp struct {
	RunID            string   `json:"run_id"`
	Title            string   `json:"title"`
	FreeDay          string   `json:"free_day"`
	DueDateTime      string   `json:"due_date_time"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	GapMinutes       int      `json:"gap_minutes"`
	List             string   `json:"list,omitempty"`
	Duplicate        bool     `json:"duplicate"`
	Committed        bool     `json:"committed"`
	Notes            string   `json:"notes,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}

func (h *handler) newPlanResp(plan scheduling.Plan) planResp {
	return planResp{
		RunID:            plan.RunID,
		Title:            plan.Title,
		FreeDay:          plan.FreeDay,
		DueDateTime:      plan.DueDateTime,
		EstimatedMinutes: plan.EstimatedMinutes,
		GapMinutes:       plan.GapMinutes,
		List:             plan.List,
		Duplicate:        plan.Duplicate,
		Committed:        plan.Committed,
		Notes:            plan.Notes,
		Warnings:         plan.Warnings,
	}
}
