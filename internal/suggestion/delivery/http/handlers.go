package http

import (
	"github.com/gin-gonic/gin"

	"event-planning-assistant/pkg/response"
)

// SuggestTasks godoc
// @Summary     Suggest tasks for an event
// @Description Generates 4 to 7 short actionable tasks from the event description.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body suggestTasksReq true "Event context"
// @Success     200  {object} suggestTasksResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Suggestion failed"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggestions/tasks [POST]
func (h *handler) SuggestTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestTasksReq(c)
	if err != nil {
		h.l.Warnf(ctx, "suggestion.delivery.http.SuggestTasks: invalid request: %v", err)
		response.Error(c, h.mapRequestError(err))
		return
	}

	output, err := h.uc.SuggestTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSuggestTasksResp(output))
}

// ResolveVendors godoc
// @Summary     Suggest vendors for a task
// @Description Classifies the task and returns vendor candidates from place search or from the text model.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body resolveVendorsReq true "Task title and event context"
// @Success     200  {object} resolveVendorsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Vendor resolution failed"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggestions/vendors [POST]
func (h *handler) ResolveVendors(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveVendorsReq(c)
	if err != nil {
		h.l.Warnf(ctx, "suggestion.delivery.http.ResolveVendors: invalid request: %v", err)
		response.Error(c, h.mapRequestError(err))
		return
	}

	output, err := h.uc.ResolveVendors(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ResolveVendors: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newResolveVendorsResp(output))
}
