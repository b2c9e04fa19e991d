package http

import (
	"action-plan-assistant/internal/model"
	"action-plan-assistant/internal/plan"
	"action-plan-assistant/pkg/deadline"
	"action-plan-assistant/pkg/response"
)

// --- Request DTOs ---

type generateReq struct {
	Idea      string `json:"idea"       binding:"required,max=4000"`
	StartDate string `json:"start_date"`
	MaxDays   int    `json:"max_days"   binding:"omitempty,min=1,max=365"`
}

type listReq struct {
	Limit  int `form:"limit"  binding:"omitempty,min=1"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

func (r listReq) toInput() plan.ListInput {
	return plan.ListInput{Limit: r.Limit, Offset: r.Offset}
}

type setCompletionReq struct {
	PlanID    string `json:"-"`
	Position  int    `json:"-"`
	Completed *bool  `json:"completed" binding:"required"`
}

func (r setCompletionReq) toInput() plan.SetStepCompletionInput {
	return plan.SetStepCompletionInput{PlanID: r.PlanID, Position: r.Position, Completed: *r.Completed}
}

type updateNoteReq struct {
	PlanID   string `json:"-"`
	Position int    `json:"-"`
	Note     string `json:"note" binding:"max=2000"`
}

func (r updateNoteReq) toInput() plan.UpdateStepNoteInput {
	return plan.UpdateStepNoteInput{PlanID: r.PlanID, Position: r.Position, Note: r.Note}
}

type syncChecklistReq struct {
	Markdown string `json:"markdown" binding:"required"`
}

// --- Response DTOs ---

type stepResp struct {
	Position      int                   `json:"position"`
	Text          string                `json:"text"`
	Difficulty    float64               `json:"difficulty"`
	DueDate       response.Date         `json:"due_date"`
	Completed     bool                  `json:"completed"`
	CompletedAt   *response.DateTime    `json:"completed_at,omitempty"`
	Note          string                `json:"note,omitempty"`
	DaysRemaining int                   `json:"days_remaining"`
	IsOverdue     bool                  `json:"is_overdue"`
	Urgency       deadline.UrgencyLevel `json:"urgency_level"`
	Status        deadline.Status       `json:"status"`
}

func newStepResp(v plan.StepView) stepResp {
	return stepResp{
		Position:      v.Step.Position,
		Text:          v.Step.Text,
		Difficulty:    v.Step.Difficulty,
		DueDate:       response.Date(v.Step.DueDate),
		Completed:     v.Step.Completed,
		CompletedAt:   response.NewDateTimePtr(v.Step.CompletedAt),
		Note:          v.Step.Note,
		DaysRemaining: v.Info.DaysRemaining,
		IsOverdue:     v.Info.IsOverdue,
		Urgency:       v.Info.Urgency,
		Status:        v.Info.Status,
	}
}

func newStepResps(views []plan.StepView) []stepResp {
	out := make([]stepResp, len(views))
	for i, v := range views {
		out[i] = newStepResp(v)
	}
	return out
}

type planResp struct {
	ID        string            `json:"id"`
	Idea      string            `json:"idea"`
	Title     string            `json:"title"`
	StartDate response.Date     `json:"start_date"`
	MaxDays   int               `json:"max_days"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
	Steps     []stepResp        `json:"steps,omitempty"`
}

func newPlanResp(p model.Plan, steps []plan.StepView) planResp {
	return planResp{
		ID:        p.ID,
		Idea:      p.Idea,
		Title:     p.Title,
		StartDate: response.Date(p.StartDate),
		MaxDays:   p.MaxDays,
		CreatedAt: response.DateTime(p.CreatedAt),
		UpdatedAt: response.DateTime(p.UpdatedAt),
		Steps:     newStepResps(steps),
	}
}

type generateResp struct {
	Plan           planResp `json:"plan"`
	CalendarEvents int      `json:"calendar_events"`
}

func (h *handler) newGenerateResp(out plan.GenerateOutput) generateResp {
	return generateResp{Plan: newPlanResp(out.Plan, out.Steps), CalendarEvents: out.CalendarEvents}
}

type detailResp struct {
	Plan planResp `json:"plan"`
}

func (h *handler) newDetailResp(out plan.DetailOutput) detailResp {
	return detailResp{Plan: newPlanResp(out.Plan, out.Steps)}
}

type planSummaryResp struct {
	planResp
	TotalSteps     int            `json:"total_steps"`
	CompletedSteps int            `json:"completed_steps"`
	Percent        float64        `json:"percent"`
	OverdueSteps   int            `json:"overdue_steps"`
	NextDue        *response.Date `json:"next_due,omitempty"`
}

type listResp struct {
	Plans  []planSummaryResp `json:"plans"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

func (h *handler) newListResp(out plan.ListOutput) listResp {
	plans := make([]planSummaryResp, len(out.Plans))
	for i, s := range out.Plans {
		item := planSummaryResp{
			planResp:       newPlanResp(s.Plan, nil),
			TotalSteps:     s.Total,
			CompletedSteps: s.Completed,
			Percent:        s.Percent,
			OverdueSteps:   s.Overdue,
		}
		if s.NextDue != nil {
			d := response.Date(*s.NextDue)
			item.NextDue = &d
		}
		plans[i] = item
	}
	return listResp{Plans: plans, Total: out.Total, Limit: out.Limit, Offset: out.Offset}
}

type stepOutputResp struct {
	Step stepResp `json:"step"`
}

func (h *handler) newStepOutputResp(out plan.StepOutput) stepOutputResp {
	return stepOutputResp{Step: newStepResp(out.Step)}
}

type progressResp struct {
	PlanID    string                  `json:"plan_id"`
	Title     string                  `json:"title"`
	Total     int                     `json:"total"`
	Completed int                     `json:"completed"`
	Pending   int                     `json:"pending"`
	Percent   float64                 `json:"percent"`
	ByStatus  map[deadline.Status]int `json:"by_status"`
	NextStep  *stepResp               `json:"next_step,omitempty"`
	Finished  bool                    `json:"finished"`
}

func (h *handler) newProgressResp(out plan.ProgressOutput) progressResp {
	resp := progressResp{
		PlanID:    out.PlanID,
		Title:     out.Title,
		Total:     out.Total,
		Completed: out.Completed,
		Pending:   out.Pending,
		Percent:   out.Percent,
		ByStatus:  out.ByStatus,
		Finished:  out.Finished,
	}
	if out.NextStep != nil {
		next := newStepResp(*out.NextStep)
		resp.NextStep = &next
	}
	return resp
}

type syncChecklistResp struct {
	Updated   int        `json:"updated"`
	Total     int        `json:"total"`
	Completed int        `json:"completed"`
	Pending   int        `json:"pending"`
	Percent   float64    `json:"percent"`
	Finished  bool       `json:"finished"`
	Steps     []stepResp `json:"steps"`
}

func (h *handler) newSyncChecklistResp(out plan.SyncChecklistOutput) syncChecklistResp {
	return syncChecklistResp{
		Updated:   out.Updated,
		Total:     out.Stats.Total,
		Completed: out.Stats.Completed,
		Pending:   out.Stats.Pending,
		Percent:   out.Stats.Progress,
		Finished:  out.Finished,
		Steps:     newStepResps(out.Steps),
	}
}
