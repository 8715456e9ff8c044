package jobstatus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	jobstatuserrors "go-hris-etl/internal/jobstatus/errors"
	"go-hris-etl/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

//go:generate mockgen -source=jobstatus_service.go -destination=mock/jobstatus_service_mock.go -package=mock
type Tracker interface {
	SetStatus(ctx context.Context, messageID, tenantID, text string, success bool)
	GetStatus(ctx context.Context, messageID string) (*JobStatus, bool)
}

func GetStatusCacheKey(messageID string) string {
	return fmt.Sprintf("job_status:%s", messageID)
}

type tracker struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewTracker returns a Tracker backed by repo. rdb may be nil, in which case
// lookups always go to the repository.
func NewTracker(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Tracker {
	l := zap.L().Named("jobstatus.tracker")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jobstatus.tracker")
	}
	return &tracker{repo: repo, rdb: rdb, ttl: ttl, sf: &singleflight.Group{}, logger: l}
}

// SetStatus records the outcome of messageID. Store failures are logged and
// dropped so they never change the outcome of the run that reports them.
func (t *tracker) SetStatus(ctx context.Context, messageID, tenantID, text string, success bool) {
	log := contextutil.GetLogger(ctx, t.logger)

	status := &JobStatus{
		MessageID:  messageID,
		TenantID:   tenantID,
		StatusText: text,
		Success:    success,
	}
	if err := t.repo.Create(ctx, status); err != nil {
		log.Error("write job status failed",
			zap.String("message_id", messageID),
			zap.String("tenant_id", tenantID),
			zap.Bool("success", success),
			zap.Error(jobstatuserrors.ErrStatusStore.WithCause(err)),
		)
		return
	}

	log.Info("job status recorded",
		zap.String("message_id", messageID),
		zap.String("tenant_id", tenantID),
		zap.String("status_text", text),
		zap.Bool("success", success),
	)
}

// GetStatus reports (record, true) once a run has finished. Absence and
// store failures both read as (nil, false).
func (t *tracker) GetStatus(ctx context.Context, messageID string) (*JobStatus, bool) {
	log := contextutil.GetLogger(ctx, t.logger)
	cacheKey := GetStatusCacheKey(messageID)

	if t.rdb != nil {
		cached, err := t.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var status JobStatus
			if err := json.Unmarshal([]byte(cached), &status); err == nil {
				return &status, true
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn("job status cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	v, err, _ := t.sf.Do(cacheKey, func() (any, error) {
		// shared by every concurrent poller, so one caller going away must not cancel it
		ctx := context.WithoutCancel(ctx)
		status, err := t.repo.FindByMessageID(ctx, messageID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}

		// terminal records never change, so they can be cached for the full ttl
		if t.rdb != nil {
			if data, err := json.Marshal(status); err == nil {
				if err := t.rdb.Set(ctx, cacheKey, string(data), t.ttl).Err(); err != nil {
					log.Warn("job status cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return status, nil
	})
	if err != nil {
		log.Error("read job status failed",
			zap.String("message_id", messageID),
			zap.Error(jobstatuserrors.ErrStatusStore.WithCause(err)),
		)
		return nil, false
	}

	status, _ := v.(*JobStatus)
	if status == nil {
		return nil, false
	}
	return status, true
}
