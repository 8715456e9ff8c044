package upload

import (
	"go-hris-etl/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMiddleware gin.HandlerFunc,
	rdb *redis.Client,
) {
	uploads := r.Group("/uploads")
	uploads.Use(authMiddleware, middleware.RateLimitByTenant(rate.Limit(1), 5))
	if rdb != nil {
		uploads.Use(middleware.Idempotency(rdb))
	}
	{
		uploads.POST("", handler.Create)
	}
}
