package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkden/linkden/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LINKDEN_DATABASE_URL", "postgres://localhost:5432/linkden_test")
	t.Setenv("LINKDEN_AUTH_JWT_SECRET", "test-secret-key-thats-at-least-32-chars")
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LINKDEN_SERVER_PORT", "9090")
	t.Setenv("LINKDEN_SERVER_LOG_LEVEL", "debug")
	t.Setenv("LINKDEN_STORAGE_ROOT", "/var/lib/linkden")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/linkden_test", cfg.Database.URL)
	assert.Equal(t, "/var/lib/linkden", cfg.Storage.Root)
	assert.False(t, cfg.Billing.BillingEnabled())
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "data", cfg.Storage.Root)
}

func TestLoadBillingEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LINKDEN_BILLING_STRIPE_SECRET_KEY", "sk_test_123")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Billing.BillingEnabled())
	assert.Equal(t, "sk_test_123", cfg.Billing.StripeSecretKey)
}

func TestLoadRejectsMissingDatabaseURL(t *testing.T) {
	t.Setenv("LINKDEN_AUTH_JWT_SECRET", "test-secret-key-thats-at-least-32-chars")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsShortJWTSecret(t *testing.T) {
	t.Setenv("LINKDEN_DATABASE_URL", "postgres://localhost:5432/linkden_test")
	t.Setenv("LINKDEN_AUTH_JWT_SECRET", "too-short")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LINKDEN_SERVER_LOG_LEVEL", "verbose")

	_, err := config.Load()
	assert.Error(t, err)
}
