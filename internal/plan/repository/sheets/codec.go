package sheets

import (
	"strconv"
	"strings"
	"time"

	"action-plan-assistant/internal/model"
	"action-plan-assistant/pkg/datemath"
)

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func planToRow(p model.Plan) []string {
	return []string{
		p.ID,
		p.UserID,
		p.Idea,
		p.Title,
		datemath.FormatDate(p.StartDate),
		strconv.Itoa(p.MaxDays),
		formatTimestamp(p.CreatedAt),
		formatTimestamp(p.UpdatedAt),
	}
}

func (r *implRepository) rowToPlan(row []string) (model.Plan, error) {
	p := model.Plan{
		ID:     cell(row, 0),
		UserID: cell(row, 1),
		Idea:   cell(row, 2),
		Title:  cell(row, 3),
	}

	var err error
	if p.StartDate, err = datemath.ParseDate(cell(row, 4), r.loc); err != nil {
		return model.Plan{}, err
	}
	if p.MaxDays, err = strconv.Atoi(cell(row, 5)); err != nil {
		return model.Plan{}, err
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, cell(row, 6)); err != nil {
		return model.Plan{}, err
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339Nano, cell(row, 7)); err != nil {
		return model.Plan{}, err
	}
	return p, nil
}

func stepToRow(s model.Step) []string {
	completedAt := ""
	if s.CompletedAt != nil {
		completedAt = formatTimestamp(*s.CompletedAt)
	}
	return []string{
		s.PlanID,
		strconv.Itoa(s.Position),
		s.Text,
		strconv.FormatFloat(s.Difficulty, 'f', -1, 64),
		datemath.FormatDate(s.DueDate),
		strconv.FormatBool(s.Completed),
		completedAt,
		s.Note,
	}
}

func (r *implRepository) rowToStep(row []string) (model.Step, error) {
	s := model.Step{
		PlanID: cell(row, 0),
		Text:   cell(row, 2),
		Note:   cell(row, 7),
	}

	var err error
	if s.Position, err = strconv.Atoi(cell(row, 1)); err != nil {
		return model.Step{}, err
	}
	if s.Difficulty, err = strconv.ParseFloat(cell(row, 3), 64); err != nil {
		return model.Step{}, err
	}
	if s.DueDate, err = datemath.ParseDate(cell(row, 4), r.loc); err != nil {
		return model.Step{}, err
	}
	if v := cell(row, 5); v != "" {
		if s.Completed, err = strconv.ParseBool(v); err != nil {
			return model.Step{}, err
		}
	}
	if v := cell(row, 6); v != "" {
		at, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return model.Step{}, err
		}
		s.CompletedAt = &at
	}
	return s, nil
}
