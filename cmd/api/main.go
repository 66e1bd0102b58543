package main

import (
	"context"
	"log"

	"github.com/kioracare/kiora-backend/internal/pkg/config"
	"github.com/kioracare/kiora-backend/internal/pkg/database"
	"github.com/kioracare/kiora-backend/internal/pkg/health"
	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/middleware"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	nsqpkg "github.com/kioracare/kiora-backend/internal/pkg/nsq"
	"github.com/kioracare/kiora-backend/internal/pkg/server"
	"github.com/kioracare/kiora-backend/internal/pkg/validation"
	"github.com/kioracare/kiora-backend/services/admin"
	adminHandler "github.com/kioracare/kiora-backend/services/admin/handler"
	adminHTTP "github.com/kioracare/kiora-backend/services/admin/handler/http"
	adminRepository "github.com/kioracare/kiora-backend/services/admin/repository"
	adminUsecase "github.com/kioracare/kiora-backend/services/admin/usecase"
	"github.com/kioracare/kiora-backend/services/leads"
	"github.com/kioracare/kiora-backend/services/leads/gateway"
	leadHandler "github.com/kioracare/kiora-backend/services/leads/handler"
	leadHTTP "github.com/kioracare/kiora-backend/services/leads/handler/http"
	leadRepository "github.com/kioracare/kiora-backend/services/leads/repository"
	leadUsecase "github.com/kioracare/kiora-backend/services/leads/usecase"
	"github.com/labstack/echo/v4"
)

func main() {
	configs := config.InitConfig("config/api.env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	if configs.Mail.APIKey == "" {
		zapLogger.Warn("RESEND_API_KEY is not set, submissions will fail with a configuration error")
	}
	if configs.Mail.From == "" || configs.Mail.To == "" {
		zapLogger.Warn("MAIL_FROM or MAIL_TO is not set, submissions will fail with a configuration error",
			logger.Bool("from_set", configs.Mail.From != ""),
			logger.Bool("to_set", configs.Mail.To != ""))
	}
	if configs.JWT.Secret == "" && (configs.Admin.Password != "" || configs.Admin.PasswordHash != "") {
		zapLogger.Fatal("JWT_SECRET must be set when an admin password is configured")
	}

	healthService := health.NewHealthService(zapLogger)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.HTTPErrorHandler

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server)
	gracefulServer.OnShutdown(func(context.Context) error {
		return zapLogger.Close()
	})

	// Optional PostgreSQL persistence
	var submissionRepo leads.SubmissionRepo
	if configs.Database.Enabled() {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		gracefulServer.OnShutdown(func(context.Context) error {
			return postgresClient.Close()
		})

		applied, err := postgresClient.Migrate()
		if err != nil {
			zapLogger.Fatal("Failed to run migrations", logger.Err(err))
		}
		zapLogger.Info("Migrations applied", logger.Int("count", applied))

		submissionRepo = leadRepository.NewSubmissionRepo(postgresClient.GetDB())
		healthService.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	} else {
		zapLogger.Warn("DB_HOST is not set, submissions will not be stored")
	}

	// Optional Redis for admin sessions and rate limiting
	var sessionRepo admin.SessionRepo
	var rateLimiter echo.MiddlewareFunc
	if configs.Redis.Enabled() {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		gracefulServer.OnShutdown(func(context.Context) error {
			return redisClient.Close()
		})

		sessionRepo = adminRepository.NewSessionRepo(redisClient)
		rateLimiter = middleware.IPRateLimiter(configs.Rate.Requests, configs.Rate.Period, redisClient.GetClient())
		healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	}

	// Optional NSQ for notification retries
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled() {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		gracefulServer.OnShutdown(func(context.Context) error {
			producer.Stop()
			return nil
		})
		healthService.AddChecker("nsq", health.CheckerFunc(func(context.Context) error {
			return producer.Ping()
		}))
	}

	// Lead intake
	leadGW := gateway.NewLeadGW(configs.Mail, producer)
	zapLogger.Info("Intake policy",
		logger.Bool("strict_validation", configs.Intake.StrictValidation),
		logger.Strings("allowed_cities", configs.Intake.AllowedCities),
		logger.Strings("schedule_slots", configs.Intake.ScheduleSlots))
	leadUC := leadUsecase.NewLeadUC(submissionRepo, leadGW, validation.New(configs.Intake), configs)
	leadHandler.NewHandler(leadHTTP.NewLeadHandler(leadUC), rateLimiter).RegisterRoutes(e)

	// Admin
	adminUC, err := adminUsecase.NewAdminUC(sessionRepo, submissionRepo, configs)
	if err != nil {
		zapLogger.Fatal("Failed to initialize admin usecase", logger.Err(err))
	}
	adminHandler.NewHandler(adminHTTP.NewAdminHandler(adminUC), adminUC).RegisterRoutes(e)

	setupMiddleware(e, zapLogger, configs)
	health.RegisterHealthEndpoints(e, configs.App.Name, configs.App.Version, healthService)

	if err := gracefulServer.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}

func setupMiddleware(e *echo.Echo, zapLogger *logger.ZapLogger, configs *models.Config) {
	// CORS runs before routing so preflights never hit 404/405
	e.Pre(middleware.CORSMiddleware(configs.CORS.AllowedOrigin))

	e.Use(middleware.RequestContextMiddleware(configs.App.Name))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
}
