package http

import (
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"action-plan-assistant/internal/model"
	"action-plan-assistant/internal/plan"
	pkgErrors "action-plan-assistant/pkg/errors"
)

const maxChecklistBytes = 1 << 20

// processScope returns the caller set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok || sc.UserID == "" {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processGenerateReq binds the generate body and resolves the optional start date.
func (h *handler) processGenerateReq(c *gin.Context) (plan.GenerateInput, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "http.processGenerateReq: %v", err)
		return plan.GenerateInput{}, errWrongBody
	}

	input := plan.GenerateInput{Idea: req.Idea, MaxDays: req.MaxDays}
	if strings.TrimSpace(req.StartDate) != "" {
		start, err := h.dates.Parse(req.StartDate, h.now())
		if err != nil {
			h.l.Warnf(c.Request.Context(), "http.processGenerateReq: %v", err)
			return plan.GenerateInput{}, errWrongDate
		}
		input.StartDate = start
	}
	return input, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "http.processListReq: %v", err)
		return req, errWrongQuery
	}
	return req, nil
}

func processPosition(c *gin.Context) (int, error) {
	pos, err := strconv.Atoi(c.Param("position"))
	if err != nil || pos <= 0 {
		return 0, errWrongPosition
	}
	return pos, nil
}

// processSetCompletionReq binds the completion body and the URI params.
func (h *handler) processSetCompletionReq(c *gin.Context) (setCompletionReq, error) {
	var req setCompletionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "http.processSetCompletionReq: %v", err)
		return req, errWrongBody
	}
	pos, err := processPosition(c)
	if err != nil {
		return req, err
	}
	req.PlanID = c.Param("id")
	req.Position = pos
	return req, nil
}

// processUpdateNoteReq binds the note body and the URI params.
func (h *handler) processUpdateNoteReq(c *gin.Context) (updateNoteReq, error) {
	var req updateNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "http.processUpdateNoteReq: %v", err)
		return req, errWrongBody
	}
	pos, err := processPosition(c)
	if err != nil {
		return req, err
	}
	req.PlanID = c.Param("id")
	req.Position = pos
	return req, nil
}

// processSyncChecklistReq accepts either {"markdown": "..."} or a raw text/markdown body.
func (h *handler) processSyncChecklistReq(c *gin.Context) (plan.SyncChecklistInput, error) {
	input := plan.SyncChecklistInput{PlanID: c.Param("id")}

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req syncChecklistReq
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(c.Request.Context(), "http.processSyncChecklistReq: %v", err)
			return input, errWrongBody
		}
		input.Markdown = req.Markdown
		return input, nil
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxChecklistBytes))
	if err != nil || len(strings.TrimSpace(string(body))) == 0 {
		return input, errWrongBody
	}
	input.Markdown = string(body)
	return input, nil
}
