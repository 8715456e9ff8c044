package jobstatus

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=jobstatus_repo.go -destination=mock/jobstatus_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, status *JobStatus) error
	FindByMessageID(ctx context.Context, messageID string) (*JobStatus, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create keeps the first record for a message id; a redelivered run that
// finishes again is a no-op.
func (r *repository) Create(ctx context.Context, status *JobStatus) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(status).Error
}

func (r *repository) FindByMessageID(ctx context.Context, messageID string) (*JobStatus, error) {
	var status JobStatus
	err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}
