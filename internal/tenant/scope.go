package tenant

import "gorm.io/gorm"

// Scope restricts a query to rows owned by tenantID.
func Scope(tenantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}
