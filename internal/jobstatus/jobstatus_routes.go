package jobstatus

import "github.com/gin-gonic/gin"

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMiddleware gin.HandlerFunc,
) {
	uploads := r.Group("/uploads")
	uploads.Use(authMiddleware)
	{
		uploads.GET("/:jobId/status", handler.GetStatus)
	}
}
