package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"action-plan-assistant/pkg/response"
)

// Generate godoc
// @Summary     Generate an action plan
// @Description Turns a business idea into ordered steps with workload-aware deadlines. start_date accepts YYYY-MM-DD or phrases like "tomorrow" or "próximo lunes".
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body generateReq true "Idea and optional horizon"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     422  {object} response.Resp "Horizon cannot hold the plan"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Plan generator unavailable"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// List godoc
// @Summary     List plans
// @Description Returns the caller's plans, newest first, with progress.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       limit  query int false "Page size (default: 20, max: 100)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get plan detail
// @Description Returns a plan with every step evaluated at the current time.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     200 {object} detailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a plan
// @Description Permanently removes a plan and its steps.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Progress godoc
// @Summary     Plan progress
// @Description Returns completion counts, counts per status and the next pending step.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     200 {object} progressResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{id}/progress [GET]
func (h *handler) Progress(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Progress(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Progress: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProgressResp(output))
}

// SetStepCompletion godoc
// @Summary     Complete or reopen a step
// @Tags        Steps
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id       path string           true "Plan ID"
// @Param       position path int              true "Step position (1-based)"
// @Param       body     body setCompletionReq true "Completion state"
// @Success     200 {object} stepOutputResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{id}/steps/{position} [PATCH]
func (h *handler) SetStepCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processSetCompletionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetStepCompletion(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetStepCompletion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStepOutputResp(output))
}

// UpdateStepNote godoc
// @Summary     Update a step note
// @Tags        Steps
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id       path string        true "Plan ID"
// @Param       position path int           true "Step position (1-based)"
// @Param       body     body updateNoteReq true "Note (max 2000 characters)"
// @Success     200 {object} stepOutputResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{id}/steps/{position}/note [PUT]
func (h *handler) UpdateStepNote(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processUpdateNoteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateStepNote(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStepNote: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStepOutputResp(output))
}

// ExportChecklist godoc
// @Summary     Export a plan as a Markdown checklist
// @Tags        Checklist
// @Produce     text/markdown
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     200 {string} string "Markdown checklist"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{id}/checklist [GET]
func (h *handler) ExportChecklist(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportChecklist(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportChecklist: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(output.Markdown))
}

// SyncChecklist godoc
// @Summary     Apply an edited Markdown checklist
// @Description Applies checkbox states back to the plan steps in order.
// @Tags        Checklist
// @Accept      json,text/markdown
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string           true "Plan ID"
// @Param       body body syncChecklistReq true "Edited checklist"
// @Success     200 {object} syncChecklistResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{id}/checklist [PUT]
func (h *handler) SyncChecklist(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.processSyncChecklistReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SyncChecklist(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncChecklist: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSyncChecklistResp(output))
}
