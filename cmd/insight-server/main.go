package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"insight-backend/internal/config"
	"insight-backend/internal/llm"
	"insight-backend/internal/logging"
	"insight-backend/internal/prompts"
	"insight-backend/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.APIKey() == "" {
		logger.Warn("no API key set for provider; completion calls will fail until provided", zap.String("provider", cfg.Provider))
	}
	completer, err := llm.New(cfg)
	if err != nil {
		return err
	}
	catalog, err := prompts.Load(cfg.PromptsFile)
	if err != nil {
		return err
	}
	s, err := server.NewServer(cfg, completer, catalog, logger)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}
