package http

import (
	"report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List reports
// @Description Return every report, newest first
// @Tags Report
// @Produce json
// @Success 200 {array} reportResp
// @Failure 500 {object} response.Resp
// @Router /reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.List(ctx)
	if err != nil {
		h.logUseCaseError(ctx, "ListReports: usecase List failed", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportListResp(o))
}

// @Summary Create a report
// @Description Create a report. The server assigns id, createdAt and updatedAt
// @Tags Report
// @Accept json
// @Produce json
// @Param body body createReportReq true "Report fields"
// @Success 201 {object} reportResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports [post]
func (h *handler) CreateReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.logUseCaseError(ctx, "CreateReport: usecase Create failed", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, h.newReportResp(o))
}

// @Summary Update a report
// @Description Merge the submitted fields over the stored report and refresh updatedAt
// @Tags Report
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param body body updateReportReq true "Fields to change"
// @Success 200 {object} reportResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports/{id} [put]
func (h *handler) UpdateReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.logUseCaseError(ctx, "UpdateReport: usecase Update failed", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Delete a report
// @Tags Report
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.MessageResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports/{id} [delete]
func (h *handler) DeleteReport(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processDeleteReportRequest(c)

	if err := h.uc.Delete(ctx, req.toInput()); err != nil {
		h.logUseCaseError(ctx, "DeleteReport: usecase Delete failed", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Message(c, reportDeletedMessage)
}
