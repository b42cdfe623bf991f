package http

import (
	"strings"

	"report-srv/internal/model"
	"report-srv/internal/report"
)

const reportDeletedMessage = "Report deleted successfully"

type createReportReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Progress    *int   `json:"progress" binding:"required,min=0,max=100"`
	Status      string `json:"status" binding:"required,oneof=in-progress completed on-hold"`
	Assignee    string `json:"assignee" binding:"required"`
	DueDate     string `json:"dueDate" binding:"required"`
}

func (r createReportReq) toInput() report.CreateInput {
	input := report.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Assignee:    r.Assignee,
		DueDate:     r.DueDate,
	}
	if r.Progress != nil {
		input.Progress = *r.Progress
	}
	return input
}

// updateReportReq only validates keys present in the body.
// id, createdAt and updatedAt are not bound, so clients cannot set them.
type updateReportReq struct {
	ID          string  `json:"-"`
	Title       *string `json:"title" binding:"omitnil,min=1"`
	Description *string `json:"description" binding:"omitnil,min=1"`
	Progress    *int    `json:"progress" binding:"omitnil,min=0,max=100"`
	Status      *string `json:"status" binding:"omitnil,oneof=in-progress completed on-hold"`
	Assignee    *string `json:"assignee" binding:"omitnil,min=1"`
	DueDate     *string `json:"dueDate" binding:"omitnil,min=1"`
}

func (r updateReportReq) toInput() report.UpdateInput {
	return report.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Progress:    r.Progress,
		Status:      r.Status,
		Assignee:    r.Assignee,
		DueDate:     r.DueDate,
	}
}

type deleteReportReq struct {
	ID string
}

func (r deleteReportReq) toInput() report.DeleteInput {
	return report.DeleteInput{
		ID: r.ID,
	}
}

type reportResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
	DueDate     string `json:"dueDate"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func (h *handler) newReportResp(r model.Report) reportResp {
	return reportResp{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Progress:    r.Progress,
		Status:      r.Status,
		Assignee:    r.Assignee,
		DueDate:     r.DueDate,
		CreatedAt:   model.FormatTimestamp(r.CreatedAt),
		UpdatedAt:   model.FormatTimestamp(r.UpdatedAt),
	}
}

func (h *handler) newReportListResp(reports []model.Report) []reportResp {
	resp := make([]reportResp, 0, len(reports))
	for _, r := range reports {
		resp = append(resp, h.newReportResp(r))
	}
	return resp
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// jsonFieldName maps a request struct field to its JSON key.
func jsonFieldName(field string) string {
	if field == "DueDate" {
		return "dueDate"
	}
	return strings.ToLower(field)
}
