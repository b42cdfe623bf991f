package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"report-srv/internal/report"
	reportHTTP "report-srv/internal/report/delivery/http"
	reportProducer "report-srv/internal/report/delivery/kafka/producer"
	reportMemory "report-srv/internal/report/repository/memory"
	reportUsecase "report-srv/internal/report/usecase"
)

// setupReportDomain wires repo -> usecase -> delivery and mounts the routes on every group.
func (srv *HTTPServer) setupReportDomain(ctx context.Context, groups ...*gin.RouterGroup) error {
	repo := reportMemory.New(srv.l, srv.seed)
	srv.reports = repo

	var producer report.Producer
	if srv.kafkaProducer != nil {
		producer = reportProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := reportUsecase.New(repo, producer, srv.l)

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	for _, g := range groups {
		handler.RegisterRoutes(g)
	}

	srv.l.Infof(ctx, "Report domain registered (%d seeded reports, events enabled: %v)", len(srv.seed), producer != nil)
	return nil
}
