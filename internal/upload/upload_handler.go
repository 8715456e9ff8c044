package upload

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go-hris-etl/internal/shared/apperror"
	"go-hris-etl/internal/shared/response"
	uploaderrors "go-hris-etl/internal/upload/errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

type Handler struct {
	service  Service
	rdb      *redis.Client
	maxBytes int64
}

func NewHandler(service Service, maxBytes int64) *Handler {
	return &Handler{service: service, maxBytes: maxBytes}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, maxBytes int64) *Handler {
	return &Handler{service: service, rdb: rdb, maxBytes: maxBytes}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	tenantID := c.GetString("tenant_id")

	var file *FileUpload
	if header, err := c.FormFile("file"); err == nil {
		if h.maxBytes > 0 && header.Size > h.maxBytes {
			h.writeServiceError(c, uploaderrors.ErrFileTooLarge)
			return
		}
		f, err := header.Open()
		if err != nil {
			h.writeServiceError(c, uploaderrors.ErrFileRequired.WithCause(err))
			return
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			h.writeServiceError(c, uploaderrors.ErrFileRequired.WithCause(err))
			return
		}
		file = &FileUpload{Name: header.Filename, Content: content}
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		h.writeServiceError(c, uploaderrors.ErrFileRequired.WithCause(err))
		return
	}

	jobID, err := h.service.Submit(c.Request.Context(), tenantID, file)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := UploadResponse{JobID: jobID}
	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, idempotencyTTL).Err()
			}
		}
	}

	response.Success(c, http.StatusOK, resp)
}
