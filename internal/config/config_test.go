package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerLoadsDefaults(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	cfg := manager.GetConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Feedback.Enabled)
	assert.Equal(t, "sqlite", cfg.Feedback.Backend)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateDefaults(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)
	assert.NoError(t, manager.Validate())
}

func TestValidateRejectsBadPort(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	manager.config.Server.Port = -1
	assert.Error(t, manager.Validate())
}

func TestValidateRejectsUnknownFeedbackBackend(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	manager.config.Feedback.Backend = "mysql"
	assert.Error(t, manager.Validate())
}

func TestValidateRequiresDatabaseFieldsWhenEnabled(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	manager.config.Database.Enabled = true
	manager.config.Database.Host = ""
	assert.Error(t, manager.Validate())
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	manager.config.Logging.Level = "verbose"
	assert.Error(t, manager.Validate())
}

func TestGetDatabaseConnectionString(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	dsn := manager.GetDatabaseConnectionString()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=peds_emergency")
	assert.Contains(t, dsn, "sslmode=disable")
}
