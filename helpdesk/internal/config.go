package internal

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"k8s.io/utils/env"
)

type ServerConfig struct {
	AppName         string        `json:"app_name"`
	Port            string        `json:"port"`
	LogLevel        string        `json:"log_level"`
	LogFormat       string        `json:"log_format"`
	ContentFile     string        `json:"content_file"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	DevMode         bool          `json:"dev_mode"`
}

func NewServerConfig() *ServerConfig {
	s := &ServerConfig{
		AppName:     env.GetString("APP_NAME", "Parameshwari PG"),
		Port:        env.GetString("PORT", "8080"),
		LogLevel:    env.GetString("LOG_LEVEL", "info"),
		LogFormat:   env.GetString("LOG_FORMAT", "text"),
		ContentFile: env.GetString("HELP_CONTENT_FILE", ""),
	}
	seconds, err := env.GetInt("SHUTDOWN_TIMEOUT", 10)
	if err != nil || seconds <= 0 {
		seconds = 10
	}
	s.ShutdownTimeout = time.Duration(seconds) * time.Second
	s.DevMode, _ = env.GetBool("DEV_MODE", false)
	return s
}

// SetupLogger configures the global slog logger based on config
func SetupLogger(config *ServerConfig) {
	slog.SetDefault(NewLogger(config, os.Stdout))
}

// NewLogger builds the slog logger described by config, writing to w.
func NewLogger(config *ServerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLogLevel(config.LogLevel),
	}

	var handler slog.Handler
	if strings.ToLower(config.LogFormat) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
