package kafka

import (
	"errors"
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerTimeout is the Kafka producer request timeout.
	ProducerTimeout = 10 * time.Second
	// ProducerRetryMax is the max producer retries.
	ProducerRetryMax = 3
	// DefaultClientID identifies this service to the brokers.
	DefaultClientID = "report-srv"
)

var (
	// KafkaVersion is the sarama version used.
	KafkaVersion = sarama.V2_6_0_0

	// ErrProducerClosed is returned by Publish and HealthCheck after Close.
	ErrProducerClosed = errors.New("kafka: producer is closed")
)
