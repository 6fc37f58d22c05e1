package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldops/cmd"
	"fieldops/internal/adapters/out/postgres/bookingrepo"
	"fieldops/internal/adapters/out/postgres/technicianrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer closeRoot(root, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting scheduled jobs: %v", err)
	}
	defer jobManager.StopAll()

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	go func() {
		if err := root.CreateAcceptanceConsumer().Run(consumerCtx); err != nil {
			logger.Error("Acceptance consumer stopped", "error", err)
		}
	}()

	e := echo.New()
	root.CreateHTTPServer().Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil {
			logger.Info("HTTP server stopped", "error", err)
		}
	}()

	waitForShutdown()
	logger.Info("Shutting down")

	stopConsumer()
	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:            goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:   goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaAcceptanceTopic: goDotEnvVariable("KAFKA_ACCEPTANCE_TOPIC"),
		KafkaPushTopic:       goDotEnvVariable("KAFKA_PUSH_TOPIC"),
		KafkaSMSTopic:        goDotEnvVariable("KAFKA_SMS_TOPIC"),
		RedisHost:            goDotEnvVariable("REDIS_HOST"),
		RedisPassword:        goDotEnvVariable("REDIS_PASSWORD"),
		MatchingServiceURL:   goDotEnvVariable("MATCHING_SERVICE_URL"),
		ReminderTimezone:     goDotEnvVariable("REMINDER_TIMEZONE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(&bookingrepo.BookingDTO{}, &technicianrepo.TechnicianDTO{}); err != nil {
		return nil, err
	}
	return gormDB, nil
}

func closeRoot(root *cmd.CompositionRoot, logger *slog.Logger) {
	if err := root.Close(); err != nil {
		logger.Error("Error closing outbound connections", "error", err)
	}
}

func waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
