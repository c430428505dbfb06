package main

import (
	"log"

	"kanban/internal/config"
	"kanban/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := server.NewLogger(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}
	defer logger.Sync()

	s, err := server.Init(cfg, logger)
	if err != nil {
		logger.Fatal("server initialization failed", zap.Error(err))
	}

	if err := s.Run(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
