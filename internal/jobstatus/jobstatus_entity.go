package jobstatus

import "time"

// JobStatus is the terminal outcome of one pipeline run. It is written once
// and never updated.
type JobStatus struct {
	MessageID  string    `gorm:"type:varchar(64);primaryKey" json:"message_id"`
	TenantID   string    `gorm:"type:varchar(64);not null" json:"tenant_id"`
	StatusText string    `gorm:"type:varchar(255);not null" json:"status_text"`
	Success    bool      `gorm:"not null" json:"success"`
	CreatedAt  time.Time `json:"created_at"`
}

func (JobStatus) TableName() string {
	return "job_statuses"
}
