package auth

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is the account that uploads files. Its id is the tenant id stamped
// on every employee record and job status.
type Tenant struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_tenant_name"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Tenant) TableName() string {
	return "tenants"
}
