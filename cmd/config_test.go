package cmd

import (
	"testing"
	"time"

	"ordering/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(lookupFrom(map[string]string{
		"DB_USER":    "merch",
		"DB_NAME":    "merch",
		"JWT_SECRET": "s3cret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.NotifyEnabled)
	assert.True(t, cfg.NotifyCopyApproversOnCreation)
	assert.Equal(t, jobs.RetentionPolicy{
		Schedule:  jobs.DefaultRetentionSchedule,
		Retention: 90 * 24 * time.Hour,
	}, cfg.NotificationRetention())
	assert.Equal(t, "host=localhost port=5432 user=merch password= dbname=merch sslmode=disable", cfg.DSN())
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := LoadConfig(lookupFrom(map[string]string{
		"HTTP_PORT":                         "9090",
		"DB_USER":                           "merch",
		"DB_NAME":                           "merch",
		"JWT_SECRET":                        "s3cret",
		"NOTIFY_ENABLED":                    "true",
		"NOTIFY_COPY_APPROVERS_ON_CREATION": "false",
		"NOTIFY_RETENTION_DAYS":             "7",
		"OTEL_ENABLED":                      "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.True(t, cfg.NotifyEnabled)
	assert.False(t, cfg.NotifyCopyApproversOnCreation)
	assert.True(t, cfg.OtelEnabled)
	assert.Equal(t, 7*24*time.Hour, cfg.NotificationRetention().Retention)
}

func TestLoadConfig_CollectsErrors(t *testing.T) {
	_, err := LoadConfig(lookupFrom(map[string]string{
		"NOTIFY_ENABLED":        "maybe",
		"NOTIFY_RETENTION_DAYS": "-1",
	}))
	require.Error(t, err)

	for _, want := range []string{"NOTIFY_ENABLED", "NOTIFY_RETENTION_DAYS", "DB_USER", "DB_NAME", "JWT_SECRET"} {
		assert.Contains(t, err.Error(), want)
	}
}
