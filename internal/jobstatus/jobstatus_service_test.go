package jobstatus_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hris-etl/internal/jobstatus"
	jobstatusMock "go-hris-etl/internal/jobstatus/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const statusTTL = 24 * time.Hour

type trackerDeps struct {
	tracker   jobstatus.Tracker
	repo      *jobstatusMock.MockRepository
	redismock redismock.ClientMock
}

func setupTrackerTest(t *testing.T) *trackerDeps {
	ctrl := gomock.NewController(t)
	repo := jobstatusMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	return &trackerDeps{
		tracker:   jobstatus.NewTracker(repo, rdb, statusTTL),
		repo:      repo,
		redismock: redisMock,
	}
}

func finishedStatus(messageID string) *jobstatus.JobStatus {
	return &jobstatus.JobStatus{
		MessageID:  messageID,
		TenantID:   "T1",
		StatusText: "Upload Finished.",
		Success:    true,
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestTracker_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("writes one record", func(t *testing.T) {
		deps := setupTrackerTest(t)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, s *jobstatus.JobStatus) error {
				assert.Equal(t, "m1", s.MessageID)
				assert.Equal(t, "T1", s.TenantID)
				assert.Equal(t, "Upload Failed.", s.StatusText)
				assert.False(t, s.Success)
				return nil
			}).Times(1)

		deps.tracker.SetStatus(ctx, "m1", "T1", "Upload Failed.", false)
	})

	t.Run("store failure is swallowed", func(t *testing.T) {
		deps := setupTrackerTest(t)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		assert.NotPanics(t, func() {
			deps.tracker.SetStatus(ctx, "m1", "T1", "Upload Finished.", true)
		})
	})

	t.Run("writes without redis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := jobstatusMock.NewMockRepository(ctrl)
		tracker := jobstatus.NewTracker(repo, nil, statusTTL)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		assert.NotPanics(t, func() {
			tracker.SetStatus(ctx, "m1", "T1", "Upload Finished.", true)
		})
	})
}

func TestTracker_GetStatus(t *testing.T) {
	ctx := context.Background()
	cacheKey := jobstatus.GetStatusCacheKey("m1")

	t.Run("cache hit", func(t *testing.T) {
		deps := setupTrackerTest(t)
		data, _ := json.Marshal(finishedStatus("m1"))
		deps.redismock.ExpectGet(cacheKey).SetVal(string(data))

		got, ok := deps.tracker.GetStatus(ctx, "m1")

		assert.True(t, ok)
		assert.Equal(t, "Upload Finished.", got.StatusText)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss reads through", func(t *testing.T) {
		deps := setupTrackerTest(t)
		status := finishedStatus("m1")
		data, _ := json.Marshal(status)
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindByMessageID(gomock.Any(), "m1").Return(status, nil)
		deps.redismock.ExpectSet(cacheKey, string(data), statusTTL).SetVal("OK")

		got, ok := deps.tracker.GetStatus(ctx, "m1")

		assert.True(t, ok)
		assert.Equal(t, status, got)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("absent is not cached", func(t *testing.T) {
		deps := setupTrackerTest(t)
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindByMessageID(gomock.Any(), "m1").Return(nil, gorm.ErrRecordNotFound)

		got, ok := deps.tracker.GetStatus(ctx, "m1")

		assert.False(t, ok)
		assert.Nil(t, got)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("store failure reads as absent", func(t *testing.T) {
		deps := setupTrackerTest(t)
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindByMessageID(gomock.Any(), "m1").Return(nil, errors.New("timeout"))

		got, ok := deps.tracker.GetStatus(ctx, "m1")

		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("cache outage falls back to store", func(t *testing.T) {
		deps := setupTrackerTest(t)
		status := finishedStatus("m1")
		data, _ := json.Marshal(status)
		deps.redismock.ExpectGet(cacheKey).SetErr(errors.New("redis down"))
		deps.repo.EXPECT().FindByMessageID(gomock.Any(), "m1").Return(status, nil)
		deps.redismock.ExpectSet(cacheKey, string(data), statusTTL).SetVal("OK")

		got, ok := deps.tracker.GetStatus(ctx, "m1")

		assert.True(t, ok)
		assert.Equal(t, "m1", got.MessageID)
	})

	t.Run("without redis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := jobstatusMock.NewMockRepository(ctrl)
		tracker := jobstatus.NewTracker(repo, nil, statusTTL)
		repo.EXPECT().FindByMessageID(gomock.Any(), "m1").Return(finishedStatus("m1"), nil)

		_, ok := tracker.GetStatus(ctx, "m1")

		assert.True(t, ok)
	})

	t.Run("lookup survives a canceled poller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := jobstatusMock.NewMockRepository(ctrl)
		tracker := jobstatus.NewTracker(repo, nil, statusTTL)

		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		repo.EXPECT().
			FindByMessageID(gomock.Any(), "m1").
			DoAndReturn(func(ctx context.Context, _ string) (*jobstatus.JobStatus, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return finishedStatus("m1"), nil
			})

		got, ok := tracker.GetStatus(canceled, "m1")

		assert.True(t, ok)
		assert.Equal(t, "m1", got.MessageID)
	})
}
