package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"APP_NAME":           "career-compass",
		"APP_ENV":            "test",
		"HTTP_PORT":          "8080",
		"DB_HOST":            "localhost",
		"DB_PORT":            "5432",
		"DB_NAME":            "career",
		"DB_USER":            "career",
		"JWT_ACCESS_SECRET":  "access",
		"JWT_REFRESH_SECRET": "refresh",
	} {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, int32(10), cfg.Database.PoolMaxConns)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExpiresIn)
	assert.InDelta(t, 0.6, cfg.Engine.ConfidenceThreshold, 1e-9)
	assert.Equal(t, 5<<20, cfg.Engine.ResumeMaxBytes)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("JWT_ACCESS_TTL", "1h")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("SKILL_CONFIDENCE_THRESHOLD", "0.75")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiresIn)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.InDelta(t, 0.75, cfg.Engine.ConfidenceThreshold, 1e-9)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_NAME", "")
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestLoad_Invalid(t *testing.T) {
	setRequired(t)
	t.Setenv("SKILL_CONFIDENCE_THRESHOLD", "1.5")
	t.Setenv("DB_AUTO_SEED", "maybe")

	_, err := Load()
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "SKILL_CONFIDENCE_THRESHOLD")
	assert.Contains(t, err.Error(), "DB_AUTO_SEED")
}
