package employee

import (
	"context"
	"time"

	"go-hris-etl/internal/tenant"

	"gorm.io/gorm"
)

const insertBatchSize = 500

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	CreateBatch(ctx context.Context, records []EmployeeRecord) error
	FindLatestByEmployeeID(ctx context.Context, tenantID string, employeeID int64) (*EmployeeRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateBatch inserts every record in one transaction: a file is persisted
// entirely or not at all. Records without a CreatedAt are stamped one
// microsecond apart in slice order, so when a file repeats an employee id the
// later row is the latest one.
func (r *repository) CreateBatch(ctx context.Context, records []EmployeeRecord) error {
	now := time.Now().UTC().Truncate(time.Microsecond)
	for i := range records {
		if records[i].CreatedAt.IsZero() {
			records[i].CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&records, insertBatchSize).Error
	})
}

func (r *repository) FindLatestByEmployeeID(ctx context.Context, tenantID string, employeeID int64) (*EmployeeRecord, error) {
	var record EmployeeRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Order("id DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
