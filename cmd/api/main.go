package main

import (
	"context"
	"fmt"

	"report-srv/config"
	configKafka "report-srv/config/kafka"
	_ "report-srv/docs" // Import swagger docs
	"report-srv/internal/httpserver"
	"report-srv/internal/report/repository/memory"
	"report-srv/pkg/discord"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
)

// @title       Report Dashboard API
// @description Progress report tracking API. Data is kept in memory and resets on restart.
// @version     1
// @host        localhost:8080
// @schemes     http
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file, .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	// 3. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
		defer discordClient.Close()
	}

	// 4. Initialize Kafka producer (optional)
	// Report change events are published only when brokers are configured
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled() {
		kafkaProducer, err = configKafka.Connect(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Kafka: ", err)
			return
		}
		defer configKafka.Disconnect()
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		logger.Infof(ctx, "Kafka brokers not configured, report events disabled")
	}

	// 5. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:       logger,
		Host:         cfg.HTTPServer.Host,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,

		// CORS Configuration
		AllowedOrigins: cfg.CORS.AllowedOrigins,

		// Storage Configuration
		Seed: memory.DefaultSeed(),

		// Messaging Configuration
		KafkaProducer: kafkaProducer,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
