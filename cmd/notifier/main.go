package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kioracare/kiora-backend/internal/pkg/config"
	"github.com/kioracare/kiora-backend/internal/pkg/constants"
	"github.com/kioracare/kiora-backend/internal/pkg/database"
	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	nsqpkg "github.com/kioracare/kiora-backend/internal/pkg/nsq"
	"github.com/kioracare/kiora-backend/internal/pkg/retry"
	"github.com/kioracare/kiora-backend/internal/pkg/validation"
	"github.com/kioracare/kiora-backend/services/leads/gateway"
	nsqHandler "github.com/kioracare/kiora-backend/services/leads/handler/nsq"
	"github.com/kioracare/kiora-backend/services/leads/repository"
	"github.com/kioracare/kiora-backend/services/leads/usecase"
)

func main() {
	configs := config.InitConfig("config/notifier.env")
	configs.App.Name = "kiora-notifier"

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	if !configs.NSQ.Enabled() || !configs.Database.Enabled() {
		zapLogger.Fatal("The notifier needs NSQ_ADDRESS and DB_HOST")
	}

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Resend never publishes, so the gateway gets no producer
	leadGW := gateway.NewLeadGW(configs.Mail, nil)
	leadUC := usecase.NewLeadUC(
		repository.NewSubmissionRepo(postgresClient.GetDB()),
		leadGW,
		validation.New(configs.Intake),
		configs,
	)

	retryConfig := retry.ConfigFromModel(configs.Retry)
	retryConfig.RetryableFunc = nsqHandler.Retryable
	handler := nsqHandler.NewNotificationHandler(leadUC, retry.New(retryConfig, zapLogger))

	channel := configs.NSQ.Channel
	if channel == "" {
		channel = constants.ChannelNotifier
	}

	consumer, err := nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
		Topic:          constants.TopicLeadNotificationFailed,
		Channel:        channel,
		MaxAttempts:    10,
		HandlerTimeout: 50 * time.Second,
	}, handler.HandleNotificationFailed)
	if err != nil {
		zapLogger.Fatal("Failed to create NSQ consumer", logger.Err(err))
	}

	if len(configs.NSQ.LookupdAddress) > 0 {
		err = consumer.ConnectToLookupd(configs.NSQ.LookupdAddress)
	} else {
		err = consumer.ConnectToNSQD(configs.NSQ.Address)
	}
	if err != nil {
		zapLogger.Fatal("Failed to connect NSQ consumer", logger.Err(err))
	}

	zapLogger.Info("Notifier started",
		logger.String("topic", constants.TopicLeadNotificationFailed),
		logger.String("channel", channel),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	zapLogger.Info("Shutting down notifier", logger.String("signal", sig.String()))
	consumer.Stop()
}
