package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	CORS     CORSConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Mail     MailConfig
	Intake   IntakeConfig
	Rate     RateLimitConfig
	Retry    RetryConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int // seconds
	WriteTimeout    int // seconds
	ShutdownTimeout int // seconds
}

// CORSConfig holds the single allowed browser origin ("*" for any)
type CORSConfig struct {
	AllowedOrigin string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// Enabled reports whether a database was configured
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// Enabled reports whether Redis was configured
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address        string
	LookupdAddress []string
	Channel        string
}

// Enabled reports whether an nsqd address was configured
func (c NSQConfig) Enabled() bool {
	return c.Address != ""
}

// JWTConfig contains admin token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// AdminConfig holds the single admin credential
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

// MailConfig contains outbound notification email configuration
type MailConfig struct {
	APIKey          string
	From            string
	To              string
	ContactSubject  string
	ScheduleSubject string
	Timeout         time.Duration
	// BreakerFailures consecutive delivery failures stop calls for BreakerCooldown
	BreakerFailures int
	BreakerCooldown time.Duration
}

// IntakeConfig controls lead validation policy
type IntakeConfig struct {
	StrictValidation bool
	AllowedCities    []string
	ScheduleSlots    []string
}

// RateLimitConfig controls the intake rate limiter
type RateLimitConfig struct {
	Requests int
	Period   time.Duration
}

// RetryConfig controls notification resend backoff
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
