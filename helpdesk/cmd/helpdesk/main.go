package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/parameshwari/pg-manager/helpdesk/http"
	"github.com/parameshwari/pg-manager/helpdesk/internal"
)

func main() {
	config := internal.NewServerConfig()
	internal.SetupLogger(config)

	slog.Info("starting helpdesk",
		"app", config.AppName,
		"port", config.Port,
		"logLevel", config.LogLevel,
		"logFormat", config.LogFormat,
		"contentFile", config.ContentFile,
		"devMode", config.DevMode,
	)

	source, err := internal.NewContentSource(config)
	if err != nil {
		slog.Error("failed to load help content", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := http.NewServer(config, source)

	slog.Info("server listening", "addr", ":"+config.Port)
	if err := s.Start(ctx); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
