package httpserver

import (
	"errors"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
	"report-srv/pkg/discord"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin          *gin.Engine
	l            log.Logger
	host         string
	port         int
	mode         string
	environment  string
	readTimeout  time.Duration
	writeTimeout time.Duration

	// CORS Configuration
	allowedOrigins []string

	// Storage Configuration
	seed    []model.Report
	reports repository.ReportRepository

	// Messaging Configuration (optional)
	kafkaProducer pkgKafka.IProducer

	// Monitoring & Notification Configuration (optional)
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger       log.Logger
	Host         string
	Port         int
	Mode         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// CORS Configuration
	AllowedOrigins []string

	// Storage Configuration: reports loaded into the store at start
	Seed []model.Report

	// Messaging Configuration: nil disables change events
	KafkaProducer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:            logger,
		gin:          gin.New(),
		host:         cfg.Host,
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,

		// CORS Configuration
		allowedOrigins: cfg.AllowedOrigins,

		// Storage Configuration
		seed: cfg.Seed,

		// Messaging Configuration
		kafkaProducer: cfg.KafkaProducer,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	return nil
}
