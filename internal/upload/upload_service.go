package upload

import (
	"context"
	"path/filepath"
	"strings"

	"go-hris-etl/internal/blob"
	"go-hris-etl/internal/events"
	"go-hris-etl/internal/shared/contextutil"
	uploaderrors "go-hris-etl/internal/upload/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var contentTypes = map[string]string{
	".csv":  "text/csv",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

//go:generate mockgen -source=upload_service.go -destination=mock/upload_service_mock.go -package=mock
type Enqueuer interface {
	Enqueue(ctx context.Context, messageID string, msg events.PipelineMessage) error
}

type Service interface {
	Submit(ctx context.Context, tenantID string, file *FileUpload) (string, error)
}

type service struct {
	store    blob.Store
	enqueuer Enqueuer
	logger   *zap.Logger
}

func NewService(store blob.Store, enqueuer Enqueuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("upload.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("upload.service")
	}
	return &service{store: store, enqueuer: enqueuer, logger: l}
}

// StorageKey names the stored object {base}_{tenant}{ext}, where base is the
// file name up to its first dot.
func StorageKey(fileName, tenantID string) string {
	name := filepath.Base(fileName)
	base, _, _ := strings.Cut(name, ".")
	return base + "_" + tenantID + strings.ToLower(filepath.Ext(name))
}

// Submit stores the file and schedules the pipeline for it, returning the job
// id callers poll with. Checks run in a fixed order: input, format, storage
// write, enqueue.
func (s *service) Submit(ctx context.Context, tenantID string, file *FileUpload) (string, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if file == nil {
		return "", uploaderrors.ErrFileRequired
	}
	if strings.TrimSpace(file.Name) == "" {
		return "", uploaderrors.ErrFileNameRequired
	}
	if strings.TrimSpace(tenantID) == "" {
		return "", uploaderrors.ErrTenantRequired
	}

	ext := strings.ToLower(filepath.Ext(file.Name))
	contentType, ok := contentTypes[ext]
	if !ok {
		return "", uploaderrors.ErrUnsupportedFormat
	}

	key := StorageKey(file.Name, tenantID)
	if err := s.store.Put(ctx, key, file.Content, contentType); err != nil {
		log.Error("store upload failed",
			zap.String("tenant_id", tenantID),
			zap.String("key", key),
			zap.Error(err),
		)
		return "", uploaderrors.ErrStorageWrite.WithCause(err)
	}

	jobID := uuid.New().String()
	msg := events.PipelineMessage{FileName: key, TenantID: tenantID}
	if err := s.enqueuer.Enqueue(ctx, jobID, msg); err != nil {
		log.Error("enqueue upload failed",
			zap.String("tenant_id", tenantID),
			zap.String("key", key),
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return "", uploaderrors.ErrEnqueue.WithCause(err)
	}

	log.Info("upload accepted",
		zap.String("tenant_id", tenantID),
		zap.String("key", key),
		zap.String("job_id", jobID),
		zap.Int("size", len(file.Content)),
	)
	return jobID, nil
}
