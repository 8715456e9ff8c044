package employee

import (
	"time"

	"github.com/google/uuid"
)

// RawEmployeeRecord is one validated row of an uploaded compensation file.
// Money is in cents.
type RawEmployeeRecord struct {
	EmployeeID        int64     `validate:"gt=0"`
	FirstName         string    `validate:"required"`
	LastName          string    `validate:"required"`
	DateOfBirth       time.Time `validate:"required"`
	GrossAnnualSalary int64     `validate:"gte=0"`
}

// EmployeeRecord is the persisted, tenant-scoped result of the pipeline.
// Re-ingesting a file inserts new rows; the newest row per
// (tenant_id, employee_id) is the current one.
type EmployeeRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID      int64     `gorm:"not null;index:idx_employee_records_tenant_employee,priority:2"`
	TenantID        string    `gorm:"type:varchar(64);not null;index:idx_employee_records_tenant_employee,priority:1"`
	FirstName       string    `gorm:"type:varchar(120);not null"`
	LastName        string    `gorm:"type:varchar(120);not null"`
	BirthDate       time.Time `gorm:"type:date;not null"`
	NetAnnualIncome int64     `gorm:"not null"` // cents
	CreatedAt       time.Time
}

func (EmployeeRecord) TableName() string {
	return "employee_records"
}
