package report

import "errors"

var (
	ErrReportNotFound = errors.New("report not found")
	ErrListFailed     = errors.New("failed to fetch reports")
	ErrCreateFailed   = errors.New("failed to create report")
	ErrUpdateFailed   = errors.New("failed to update report")
	ErrDeleteFailed   = errors.New("failed to delete report")
)
