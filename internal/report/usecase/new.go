package usecase

import (
	"sync"
	"time"

	"report-srv/internal/report"
	"report-srv/internal/report/repository"
	"report-srv/pkg/log"
)

type implUseCase struct {
	repo     repository.ReportRepository
	producer report.Producer
	l        log.Logger
	now      func() time.Time

	// publishTimeout bounds a single background publish.
	publishTimeout time.Duration
	inflight       sync.WaitGroup
}

const defaultPublishTimeout = 5 * time.Second

// New creates a new report UseCase implementation.
// producer may be nil, in which case no change events are published.
// Events are published in the background so a slow broker never delays a response.
func New(repo repository.ReportRepository, producer report.Producer, l log.Logger) report.UseCase {
	return &implUseCase{
		repo:     repo,
		producer: producer,
		l:        l,
		now:      time.Now,

		publishTimeout: defaultPublishTimeout,
	}
}
