package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the course service
type Config struct {
	Database     DatabaseConfig
	Kafka        KafkaConfig
	SMTP         SMTPConfig
	Stripe       StripeConfig
	Auth         AuthConfig
	Notification NotificationConfig
	Deactivation DeactivationConfig
	Logging      LoggingConfig
	Service      ServiceConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers []string
	GroupID string
	Topic   string
}

// SMTPConfig holds mail transport configuration
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// StripeConfig holds payment gateway configuration
type StripeConfig struct {
	APIKey   string
	BaseURL  string
	Currency string
	Timeout  time.Duration
}

// AuthConfig holds token verification configuration
type AuthConfig struct {
	JWTSecret string
}

// NotificationConfig holds update notification configuration
type NotificationConfig struct {
	DebounceWindow time.Duration
}

// DeactivationConfig holds inactive account checker configuration
type DeactivationConfig struct {
	CheckInterval time.Duration
	InactivityMax time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name              string
	Port              string
	AllowedVideoHosts []string
	PageSize          int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "courses_user"),
			Password: getEnv("DATABASE_PASSWORD", "courses_pass"),
			DBName:   getEnv("DATABASE_NAME", "courses_db"),
			SSLMode:  getEnv("DATABASE_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9093"), ","),
			GroupID: getEnv("KAFKA_GROUP_ID", "course-service-group"),
			Topic:   getEnv("KAFKA_NOTIFICATION_TOPIC", "course.update.notifications"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "noreply@courseflow.dev"),
		},
		Stripe: StripeConfig{
			APIKey:   getEnv("STRIPE_API_KEY", ""),
			BaseURL:  getEnv("STRIPE_BASE_URL", "https://api.stripe.com"),
			Currency: getEnv("STRIPE_CURRENCY", "usd"),
			Timeout:  getDurationEnv("STRIPE_TIMEOUT", 15*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Notification: NotificationConfig{
			DebounceWindow: getDurationEnv("NOTIFY_DEBOUNCE_WINDOW", 4*time.Hour),
		},
		Deactivation: DeactivationConfig{
			CheckInterval: getDurationEnv("DEACTIVATION_CHECK_INTERVAL", 24*time.Hour),
			InactivityMax: getDurationEnv("DEACTIVATION_INACTIVITY_MAX", 30*24*time.Hour),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name:              getEnv("SERVICE_NAME", "course-service"),
			Port:              getEnv("SERVICE_PORT", "8080"),
			AllowedVideoHosts: strings.Split(getEnv("ALLOWED_VIDEO_HOSTS", "youtube.com"), ","),
			PageSize:          getIntEnv("PAGE_SIZE", 20),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DATABASE_HOST is required")
	}

	if c.Database.User == "" {
		return fmt.Errorf("DATABASE_USER is required")
	}

	if c.Database.DBName == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}

	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	if c.Kafka.Topic == "" {
		return fmt.Errorf("KAFKA_NOTIFICATION_TOPIC is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.Notification.DebounceWindow <= 0 {
		return fmt.Errorf("NOTIFY_DEBOUNCE_WINDOW must be positive")
	}

	return nil
}

// GetDSN returns database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Deps exposes config sections as individual fx dependencies
type Deps struct {
	fx.Out

	Config       *Config
	Database     *DatabaseConfig
	Kafka        *KafkaConfig
	SMTP         *SMTPConfig
	Stripe       *StripeConfig
	Auth         *AuthConfig
	Notification *NotificationConfig
	Deactivation *DeactivationConfig
	Logging      *LoggingConfig
	Service      *ServiceConfig
}

// Out loads the configuration and fans it out for fx DI
func Out() (Deps, error) {
	cfg, err := Load()
	if err != nil {
		return Deps{}, err
	}

	return Deps{
		Config:       cfg,
		Database:     &cfg.Database,
		Kafka:        &cfg.Kafka,
		SMTP:         &cfg.SMTP,
		Stripe:       &cfg.Stripe,
		Auth:         &cfg.Auth,
		Notification: &cfg.Notification,
		Deactivation: &cfg.Deactivation,
		Logging:      &cfg.Logging,
		Service:      &cfg.Service,
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getIntEnv gets integer environment variable with default value
func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getDurationEnv gets duration environment variable with default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
