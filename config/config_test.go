package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "")
	t.Setenv("REFRESH_TOKEN_EXPIRY", "")
	t.Setenv("MAX_ACTIVE_REFRESH_TOKENS", "")
	t.Setenv("ADMIN_USERNAME", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.AdminUsername)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "access-secret", cfg.AccessTokenSecret)
	assert.Equal(t, "refresh-secret", cfg.RefreshTokenSecret)
	assert.Equal(t, 15, cfg.AccessExpiryMin)
	assert.Equal(t, 10080, cfg.RefreshExpiryMin)
	assert.Equal(t, 5, cfg.MaxActiveRefreshTokens)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "30")
	t.Setenv("REFRESH_TOKEN_EXPIRY", "20160")
	t.Setenv("MAX_ACTIVE_REFRESH_TOKENS", "3")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_EMAIL", "root@x.com")
	t.Setenv("ADMIN_PASSWORD", "rootpw1")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 30, cfg.AccessExpiryMin)
	assert.Equal(t, 20160, cfg.RefreshExpiryMin)
	assert.Equal(t, 3, cfg.MaxActiveRefreshTokens)
	assert.Equal(t, "root", cfg.AdminUsername)
	assert.Equal(t, "root@x.com", cfg.AdminEmail)
	assert.Equal(t, "rootpw1", cfg.AdminPassword)
}

// Non-numeric expiry values fall back to defaults instead of failing startup.
func TestLoad_InvalidIntFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ACCESS_TOKEN_EXPIRY", "not-a-number")
	t.Setenv("REFRESH_TOKEN_EXPIRY", "")
	t.Setenv("MAX_ACTIVE_REFRESH_TOKENS", "")

	cfg := Load()

	assert.Equal(t, 15, cfg.AccessExpiryMin)
	assert.Equal(t, 10080, cfg.RefreshExpiryMin)
	assert.Equal(t, 5, cfg.MaxActiveRefreshTokens)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	assert.Equal(t, "value", getEnv("SOME_KEY", "fallback"))

	t.Setenv("SOME_KEY", "")
	assert.Equal(t, "fallback", getEnv("SOME_KEY", "fallback"))

	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("SOME_INT", 7))

	t.Setenv("SOME_INT", "")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
}
