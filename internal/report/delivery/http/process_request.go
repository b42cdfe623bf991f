package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func (h *handler) processCreateReportRequest(c *gin.Context) (createReportReq, error) {
	var req createReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "report.delivery.http.processCreateReportRequest: ShouldBindJSON failed: %v", err)
		return req, invalidBody(err)
	}

	return req, nil
}

func (h *handler) processUpdateReportRequest(c *gin.Context) (updateReportReq, error) {
	var req updateReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "report.delivery.http.processUpdateReportRequest: ShouldBindJSON failed: %v", err)
		return req, invalidBody(err)
	}

	req.ID = c.Param("id")
	return req, nil
}

func (h *handler) processDeleteReportRequest(c *gin.Context) deleteReportReq {
	return deleteReportReq{
		ID: c.Param("id"),
	}
}

// invalidBody turns a binding error into a 400, listing failed fields when validation ran.
func invalidBody(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errInvalidRequestBody
	}

	details := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldError{
			Field: jsonFieldName(fe.Field()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return errInvalidRequestBody.WithDetails(details)
}
