package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars clears all Apex Hour-related environment variables.
func clearEnvVars() {
	envVars := []string{
		"APP_ENV",
		"APEXHOUR_LOG_LEVEL",
		"APEXHOUR_DB_PATH",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DBPath)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	t.Setenv("APP_ENV", "production")
	t.Setenv("APEXHOUR_LOG_LEVEL", "debug")
	t.Setenv("APEXHOUR_DB_PATH", "/tmp/apexhour-test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/apexhour-test.db", cfg.DBPath)
	assert.True(t, cfg.IsProduction())
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("APEXHOUR_TEST_INT", "42")
	t.Setenv("APEXHOUR_TEST_BOOL", "true")

	assert.Equal(t, 42, getIntEnv("APEXHOUR_TEST_INT", 7))
	assert.Equal(t, 7, getIntEnv("APEXHOUR_TEST_MISSING_INT", 7))
	assert.True(t, getBoolEnv("APEXHOUR_TEST_BOOL", false))
	assert.False(t, getBoolEnv("APEXHOUR_TEST_MISSING_BOOL", false))
}
