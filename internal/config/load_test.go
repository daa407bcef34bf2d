package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for a test and returns a cleanup
// function restoring the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()

	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		require.NoError(t, os.Setenv(name, value), "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKAPI_SERVER_PORT":      "",
		"TASKAPI_SERVER_LOG_LEVEL": "",
		"TASKAPI_TRACING_EXPORTER": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8000, cfg.Server.Port, "Default server port should be 8000")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "stdout", cfg.Tracing.Exporter, "Default span exporter should be 'stdout'")
	assert.Equal(t, "grpc", cfg.Tracing.Protocol)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKAPI_SERVER_PORT":      "9090",
		"TASKAPI_SERVER_LOG_LEVEL": "debug",
		"TASKAPI_TRACING_EXPORTER": "otlp",
		"TASKAPI_TRACING_ENDPOINT": "collector:4317",
		"TASKAPI_TRACING_INSECURE": "true",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "otlp", cfg.Tracing.Exporter)
	assert.Equal(t, "collector:4317", cfg.Tracing.Endpoint)
	assert.True(t, cfg.Tracing.Insecure)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKAPI_SERVER_LOG_LEVEL": "verbose",
	})
	defer cleanup()

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsOTLPWithoutEndpoint(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKAPI_TRACING_EXPORTER": "otlp",
		"TASKAPI_TRACING_ENDPOINT": "",
	})
	defer cleanup()

	_, err := Load()
	assert.Error(t, err, "otlp exporter without an endpoint should fail validation")
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKAPI_SERVER_PORT": "70000",
	})
	defer cleanup()

	_, err := Load()
	assert.Error(t, err)
}
