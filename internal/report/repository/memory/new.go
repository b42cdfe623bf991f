package memory

import (
	"strconv"
	"sync"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
	"report-srv/pkg/log"
)

type implRepository struct {
	mu      sync.RWMutex
	reports []model.Report
	lastID  int64
	now     func() time.Time
	l       log.Logger
}

// New creates a memory repository holding a copy of seed, in order.
func New(l log.Logger, seed []model.Report) repository.MemoryRepository {
	r := &implRepository{
		reports: make([]model.Report, len(seed)),
		now:     time.Now,
		l:       l,
	}
	copy(r.reports, seed)

	for _, rpt := range seed {
		if n, err := strconv.ParseInt(rpt.ID, 10, 64); err == nil && n > r.lastID {
			r.lastID = n
		}
	}
	return r
}
