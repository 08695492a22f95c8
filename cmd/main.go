package main

import (
	"log"

	"github.com/moura95/credential-service/internal/infra/config"
	"github.com/moura95/credential-service/internal/infra/database/postgres"
	"github.com/moura95/credential-service/internal/infra/http/gin"
	"github.com/moura95/credential-service/internal/infra/messaging/queues"
	"github.com/moura95/credential-service/internal/infra/messaging/rabbitmq"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	loadConfig, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Initialize database connection
	db, err := postgres.Connect(loadConfig.DBSource)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	sugar.Info("Database connection established")

	// Initialize RabbitMQ connection
	signupQueue := setupSignupQueue(loadConfig, sugar)

	// Run HTTP server
	gin.RunGinServer(loadConfig, db, sugar, signupQueue)
}

func setupSignupQueue(cfg config.Config, logger *zap.SugaredLogger) *queues.SignupQueue {
	connectionConfig := rabbitmq.ConnectionConfig{
		URL:       cfg.RabbitMQURL,
		QueueName: cfg.RabbitMQQueueSignup,
	}

	rabbitConn, err := rabbitmq.NewConnection(connectionConfig)
	if err != nil {
		logger.Warnf("Failed to setup RabbitMQ (continuing without messaging): %v", err)
		return nil
	}

	logger.Info("RabbitMQ connection established")
	return queues.NewSignupQueue(rabbitConn, cfg.RabbitMQQueueSignup)
}
