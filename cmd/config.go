package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"ordering/internal/jobs"
)

const (
	defaultHTTPPort      = "8080"
	defaultRetentionDays = 90
	defaultFromAddress   = "merch-orders@localhost"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel    string
	Environment string
	OtelEnabled bool

	JWTSecret string
	JWTIssuer string

	NotifyEnabled                 bool
	NotifyFromAddress             string
	NotifyCopyApproversOnCreation bool
	NotifyRetentionDays           int
	NotifyRetentionSchedule       string
}

// LoadConfig reads the process environment through lookup (os.LookupEnv in
// production). Missing optional keys fall back to defaults.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	get := func(key string, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	var errs []error
	boolean := func(key string, fallback bool) bool {
		raw := get(key, "")
		if raw == "" {
			return fallback
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return fallback
		}
		return v
	}

	cfg := Config{
		HTTPPort:   get("HTTP_PORT", defaultHTTPPort),
		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", ""),
		DBPassword: get("DB_PASSWORD", ""),
		DBName:     get("DB_NAME", ""),
		DBSslMode:  get("DB_SSLMODE", "disable"),

		LogLevel:    get("LOG_LEVEL", "info"),
		Environment: get("APP_ENV", "development"),
		OtelEnabled: boolean("OTEL_ENABLED", false),

		JWTSecret: get("JWT_SECRET", ""),
		JWTIssuer: get("JWT_ISSUER", ""),

		NotifyEnabled:                 boolean("NOTIFY_ENABLED", false),
		NotifyFromAddress:             get("NOTIFY_FROM_ADDRESS", defaultFromAddress),
		NotifyCopyApproversOnCreation: boolean("NOTIFY_COPY_APPROVERS_ON_CREATION", true),
		NotifyRetentionDays:           defaultRetentionDays,
		NotifyRetentionSchedule:       get("NOTIFY_RETENTION_SCHEDULE", jobs.DefaultRetentionSchedule),
	}

	if raw := get("NOTIFY_RETENTION_DAYS", ""); raw != "" {
		days, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("NOTIFY_RETENTION_DAYS: %w", err))
		case days <= 0:
			errs = append(errs, fmt.Errorf("NOTIFY_RETENTION_DAYS: must be positive, got %d", days))
		default:
			cfg.NotifyRetentionDays = days
		}
	}

	if cfg.DBUser == "" {
		errs = append(errs, errors.New("DB_USER is required"))
	}
	if cfg.DBName == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}

	return cfg, errors.Join(errs...)
}

// LoadConfigFromEnv is LoadConfig over os.LookupEnv.
func LoadConfigFromEnv() (Config, error) {
	return LoadConfig(os.LookupEnv)
}

// DSN is the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) NotificationRetention() jobs.RetentionPolicy {
	return jobs.RetentionPolicy{
		Schedule:  c.NotifyRetentionSchedule,
		Retention: time.Duration(c.NotifyRetentionDays) * 24 * time.Hour,
	}
}
