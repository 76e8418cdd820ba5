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
	"github.com/kingrain94/rental-manager-api/internal/service/pubsub"
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

	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Repairs are published to websocket clients like any other room write
	repo := composite.New(postgres.NewPostgresRepository(dbConnections), nil)
	snapshots := service.NewSnapshotService(repo, pubsub.NewRedisPubSub(redisClient, redisConfig.ChannelPrefix, appLogger), appLogger)
	occupancy := service.NewOccupancyService(repo, sqsService, appLogger)
	occupancy.SetNotifier(snapshots)

	reconcileWorker := worker.NewReconcileWorker(
		sqsService,
		sqsService.ReconcileQueueURL(),
		occupancy,
		appLogger,
		1, // sweeps are serialized
		5*time.Second,
	)

	scheduler, err := worker.NewScheduler(sqsService, location, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create scheduler", err)
	}

	reconcileWorker.Start()
	scheduler.Start()
	appLogger.Info("Reconcile worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	if err := scheduler.Stop(); err != nil {
		appLogger.Error("Failed to stop scheduler", err)
	}
	reconcileWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
