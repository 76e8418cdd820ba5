package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/rental-manager-api/internal/config"
	"github.com/kingrain94/rental-manager-api/internal/repository/composite"
	"github.com/kingrain94/rental-manager-api/internal/repository/postgres"
	"github.com/kingrain94/rental-manager-api/internal/service"
	"github.com/kingrain94/rental-manager-api/internal/service/queue"
	"github.com/kingrain94/rental-manager-api/internal/worker"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}
	location, err := cfg.ReportLocation()
	if err != nil {
		appLogger.Fatal("Failed to load report time zone", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to S3", err)
	}

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	repo := composite.New(postgres.NewPostgresRepository(dbConnections), nil)
	payments := service.NewPaymentService(repo, location, appLogger)

	archiveWorker := worker.NewArchiveWorker(
		sqsService,
		sqsService.ArchiveQueueURL(),
		payments,
		s3Client,
		s3Config.BucketName,
		appLogger,
		cfg.WorkerCount,
		30*time.Second,
	)

	archiveWorker.Start()
	appLogger.Infof("Archive worker started, writing to bucket %s", s3Config.BucketName)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	archiveWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
