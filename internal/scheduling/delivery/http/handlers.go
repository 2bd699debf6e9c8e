package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"later-reminder/pkg/response"
)

// Plan godoc
// @Summary     Preview a reminder plan
// @Description Computes the free day, due time, estimate, and spacing for a note without creating anything.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Scheduling request"
// @Success     200  {object} planResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Reminder store not authorized"
// @Failure     404  {object} response.Resp "List not found"
// @Failure     409  {object} response.Resp "No free day in range"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/plan [POST]
func (h *handler) Plan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Resp{ErrorCode: http.StatusBadRequest, Message: err.Error()})
		return
	}

	plan, err := h.uc.Plan(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Plan: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPlanResp(plan))
}

// Apply godoc
// @Summary     Schedule a reminder
// @Description Computes the plan and creates the reminder unless an identical one already exists on the chosen day.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Scheduling request"
// @Success     200  {object} planResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Reminder store not authorized"
// @Failure     404  {object} response.Resp "List not found"
// @Failure     409  {object} response.Resp "No free day in range"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/apply [POST]
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Resp{ErrorCode: http.StatusBadRequest, Message: err.Error()})
		return
	}

	plan, err := h.uc.Apply(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Apply: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPlanResp(plan))
}
