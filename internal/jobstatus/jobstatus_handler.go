package jobstatus

import (
	"net/http"
	"time"

	jobstatuserrors "go-hris-etl/internal/jobstatus/errors"
	"go-hris-etl/internal/shared/apperror"
	"go-hris-etl/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	tracker Tracker
	logger  *zap.Logger
}

func NewHandler(tracker Tracker, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("jobstatus.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jobstatus.handler")
	}
	return &Handler{tracker: tracker, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetStatus answers 404 JOB_IN_PROGRESS until the run has recorded an
// outcome. Another tenant's job is indistinguishable from an unfinished one.
func (h *Handler) GetStatus(c *gin.Context) {
	jobID := c.Param("jobId")
	if _, err := uuid.Parse(jobID); err != nil {
		h.writeError(c, jobstatuserrors.ErrInvalidJobID)
		return
	}

	status, ok := h.tracker.GetStatus(c.Request.Context(), jobID)
	if !ok || status.TenantID != c.GetString("tenant_id") {
		h.writeError(c, jobstatuserrors.ErrJobInProgress)
		return
	}

	response.Success(c, http.StatusOK, JobStatusResponse{
		JobID:      status.MessageID,
		StatusText: status.StatusText,
		Success:    status.Success,
		FinishedAt: status.CreatedAt.UTC().Format(time.RFC3339),
	})
}
