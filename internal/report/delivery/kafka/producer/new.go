package producer

import (
	"report-srv/internal/report"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
)

// Producer interface for report domain
type Producer interface {
	report.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new report event producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
