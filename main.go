package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/odia-ai/voicegate/config"
	"github.com/odia-ai/voicegate/pkg/otel"
	"github.com/odia-ai/voicegate/server"
)

func main() {
	path := flag.String("config", "config.yaml", "configuration file")
	flag.Parse()

	slog.SetDefault(otel.NewLogger(os.Stdout))

	cfg, err := config.Parse(*path)

	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	slog.Info("listening", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
