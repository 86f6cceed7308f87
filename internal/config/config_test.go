package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvConfigDefaults(t *testing.T) {
	t.Setenv("HR_DB_PATH", "")
	t.Setenv("HR_DB_READ_ONLY", "")
	t.Setenv("HR_DB_BUSY_TIMEOUT", "")

	require.NoError(t, LoadEnvConfig())

	assert.Equal(t, "hr_database.db", DefaultEnvConfig.HR_DB_PATH)
	assert.False(t, DefaultEnvConfig.HR_DB_READ_ONLY)
	assert.Equal(t, 5*time.Second, DefaultEnvConfig.HR_DB_BUSY_TIMEOUT)
}

func TestLoadEnvConfigOverrides(t *testing.T) {
	t.Setenv("HR_DB_PATH", "/tmp/practice.db")
	t.Setenv("HR_DB_READ_ONLY", "true")
	t.Setenv("HR_DB_BUSY_TIMEOUT", "30s")

	require.NoError(t, LoadEnvConfig())

	assert.Equal(t, "/tmp/practice.db", DefaultEnvConfig.HR_DB_PATH)
	assert.True(t, DefaultEnvConfig.HR_DB_READ_ONLY)
	assert.Equal(t, 30*time.Second, DefaultEnvConfig.HR_DB_BUSY_TIMEOUT)
}

func TestGetEnvDurationPlainSeconds(t *testing.T) {
	t.Setenv("HR_DB_BUSY_TIMEOUT", "10")
	assert.Equal(t, 10*time.Second, getEnvDuration("HR_DB_BUSY_TIMEOUT", time.Second))
}
