package app

import (
	"go-hris-etl/internal/auth"
	"go-hris-etl/internal/blob"
	"go-hris-etl/internal/config"
	"go-hris-etl/internal/employee"
	"go-hris-etl/internal/jobstatus"
	"go-hris-etl/internal/middleware"
	"go-hris-etl/internal/upload"

	"github.com/gin-gonic/gin"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	infra *Infra,
	store blob.Store,
	enqueuer upload.Enqueuer,
) {
	// --- Repositories ---
	authRepo := auth.NewRepository(infra.GormDB)
	employeeRepo := employee.NewRepository(infra.GormDB)
	jobStatusRepo := jobstatus.NewRepository(infra.GormDB)

	// --- Services ---
	authService := auth.NewService(authRepo, cfg.Auth)
	employeeService := employee.NewService(employeeRepo)
	tracker := jobstatus.NewTracker(jobStatusRepo, infra.Redis, cfg.Redis.StatusTTL)
	uploadService := upload.NewService(store, enqueuer)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	jobStatusHandler := jobstatus.NewHandler(tracker)
	uploadHandler := upload.NewHandlerWithRedis(uploadService, infra.Redis, cfg.HTTP.MaxUploadMB<<20)

	authMiddleware := middleware.AuthMiddleware(cfg.Auth)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, authMiddleware)
		jobstatus.RegisterRoutes(api, jobStatusHandler, authMiddleware)
		upload.RegisterRoutes(api, uploadHandler, authMiddleware, infra.Redis)
	}
}
