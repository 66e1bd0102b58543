package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/spf13/viper"
)

// DefaultScheduleSlots are the test slots offered when none are configured
var DefaultScheduleSlots = []string{
	"09:00-11:00",
	"11:00-13:00",
	"14:00-16:00",
	"16:00-18:00",
}

func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		// Load config from file
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "kiora-api")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_PORT", 3001)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_CHANNEL", "notifier")

	v.SetDefault("ADMIN_TOKEN_TTL_MINUTES", 720)
	v.SetDefault("JWT_ISSUER", "kiora-api")

	v.SetDefault("ADMIN_USERNAME", "admin")

	v.SetDefault("MAIL_FROM", "Kiora Care <onboarding@resend.dev>")
	v.SetDefault("MAIL_SUBJECT", "New Contact Form Submission from Kiora Website")
	v.SetDefault("MAIL_SCHEDULE_SUBJECT", "New Test Booking Request from Kiora Website")
	v.SetDefault("MAIL_TIMEOUT_SECONDS", 10)
	v.SetDefault("MAIL_BREAKER_FAILURES", 5)
	v.SetDefault("MAIL_BREAKER_COOLDOWN_SECONDS", 30)

	v.SetDefault("INTAKE_STRICT_VALIDATION", false)

	v.SetDefault("RATE_LIMIT_REQUESTS", 10)
	v.SetDefault("RATE_LIMIT_PERIOD_SECONDS", 60)

	v.SetDefault("RETRY_MAX_ATTEMPTS", 5)
	v.SetDefault("RETRY_BASE_DELAY_MS", 500)

	v.SetDefault("LOG_LEVEL", "info")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.CORS.AllowedOrigin = v.GetString("CORS_ALLOWED_ORIGIN")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.LookupdAddress = splitList(v.GetString("NSQ_LOOKUPD_ADDRESS"))
	configs.NSQ.Channel = v.GetString("NSQ_CHANNEL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("ADMIN_TOKEN_TTL_MINUTES")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Admin credential
	configs.Admin.Username = v.GetString("ADMIN_USERNAME")
	configs.Admin.Password = v.GetString("ADMIN_PASSWORD")
	configs.Admin.PasswordHash = v.GetString("ADMIN_PASSWORD_HASH")

	// Mail config
	configs.Mail.APIKey = v.GetString("RESEND_API_KEY")
	configs.Mail.From = v.GetString("MAIL_FROM")
	configs.Mail.To = v.GetString("MAIL_TO")
	configs.Mail.ContactSubject = v.GetString("MAIL_SUBJECT")
	configs.Mail.ScheduleSubject = v.GetString("MAIL_SCHEDULE_SUBJECT")
	configs.Mail.Timeout = time.Duration(v.GetInt("MAIL_TIMEOUT_SECONDS")) * time.Second
	configs.Mail.BreakerFailures = v.GetInt("MAIL_BREAKER_FAILURES")
	configs.Mail.BreakerCooldown = time.Duration(v.GetInt("MAIL_BREAKER_COOLDOWN_SECONDS")) * time.Second

	// Intake policy
	configs.Intake.StrictValidation = v.GetBool("INTAKE_STRICT_VALIDATION")
	configs.Intake.AllowedCities = splitList(v.GetString("INTAKE_ALLOWED_CITIES"))
	configs.Intake.ScheduleSlots = splitList(v.GetString("INTAKE_SCHEDULE_SLOTS"))
	if len(configs.Intake.ScheduleSlots) == 0 {
		configs.Intake.ScheduleSlots = DefaultScheduleSlots
	}

	configs.Rate.Requests = v.GetInt("RATE_LIMIT_REQUESTS")
	configs.Rate.Period = time.Duration(v.GetInt("RATE_LIMIT_PERIOD_SECONDS")) * time.Second

	configs.Retry.MaxAttempts = v.GetInt("RETRY_MAX_ATTEMPTS")
	configs.Retry.BaseDelay = time.Duration(v.GetInt("RETRY_BASE_DELAY_MS")) * time.Millisecond

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

// splitList parses a comma separated env value, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
