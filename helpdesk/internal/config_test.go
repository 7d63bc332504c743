package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfigDefaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "PORT", "LOG_LEVEL", "LOG_FORMAT", "HELP_CONTENT_FILE", "SHUTDOWN_TIMEOUT", "DEV_MODE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	c := NewServerConfig()
	assert.Equal(t, "Parameshwari PG", c.AppName)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, "", c.ContentFile)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.False(t, c.DevMode)
}

func TestNewServerConfigFromEnv(t *testing.T) {
	t.Setenv("APP_NAME", "Sai PG")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("HELP_CONTENT_FILE", "/etc/helpdesk/help.yaml")
	t.Setenv("SHUTDOWN_TIMEOUT", "3")
	t.Setenv("DEV_MODE", "true")

	c := NewServerConfig()
	assert.Equal(t, "Sai PG", c.AppName)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, "/etc/helpdesk/help.yaml", c.ContentFile)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
	assert.True(t, c.DevMode)
}

func TestNewServerConfigBadShutdownTimeout(t *testing.T) {
	for _, v := range []string{"soon", "-1", "0"} {
		t.Setenv("SHUTDOWN_TIMEOUT", v)
		assert.Equalf(t, 10*time.Second, NewServerConfig().ShutdownTimeout, "SHUTDOWN_TIMEOUT=%q", v)
	}
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	} {
		assert.Equalf(t, want, ParseLogLevel(in), "level %q", in)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&ServerConfig{LogLevel: "warn", LogFormat: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "shown", line["msg"])
	require.Equal(t, "v", line["k"])
	require.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&ServerConfig{LogLevel: "info", LogFormat: "text"}, &buf).Info("hello", "port", "8080")
	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "port=8080")
}
