package http

import (
	"context"
	"errors"
	"net/http"

	"report-srv/internal/report"
	pkgErrors "report-srv/pkg/errors"
)

var (
	errInvalidRequestBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errReportNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "Report not found")
	errListFailed         = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to fetch reports")
	errCreateFailed       = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to create report")
	errUpdateFailed       = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to update report")
	errDeleteFailed       = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to delete report")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrListFailed):
		return errListFailed
	case errors.Is(err, report.ErrCreateFailed):
		return errCreateFailed
	case errors.Is(err, report.ErrUpdateFailed):
		return errUpdateFailed
	case errors.Is(err, report.ErrDeleteFailed):
		return errDeleteFailed
	default:
		panic(err)
	}
}

// logUseCaseError reports caller mistakes at warn level and everything else at error level.
func (h *handler) logUseCaseError(ctx context.Context, op string, err error) {
	if errors.Is(err, report.ErrReportNotFound) {
		h.l.Warnf(ctx, "report.delivery.http.%s: %v", op, err)
		return
	}
	h.l.Errorf(ctx, "report.delivery.http.%s: %v", op, err)
}
