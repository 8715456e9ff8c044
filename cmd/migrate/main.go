package main

import (
	"go-hris-etl/internal/config"
	"go-hris-etl/internal/shared/connection"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	if err := connection.RunMigrations(cfg.Database.URL()); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
}
