package main

import (
	"context"

	"go-hris-etl/internal/app"
	"go-hris-etl/internal/bootstrap"
	"go-hris-etl/internal/config"
	"go-hris-etl/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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

	apperror.Init()
	r := gin.Default()

	// build dependency + routes
	infra, err := app.BuildApp(context.Background(), r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer infra.Close()

	bootstrap.StartHTTPServer(
		bootstrap.NewHandler(r, cfg.CORS),
		cfg.HTTP,
		bootstrap.NewStdoutAuditLogger(),
	)
}
