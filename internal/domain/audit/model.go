package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records who changed what, with JSON before/after snapshots.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint           `gorm:"index" json:"user_id"`
	IP           string         `gorm:"size:45" json:"ip"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	Action       string         `gorm:"size:20;not null" json:"action"`
	ResourceType string         `gorm:"size:40;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:40" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	Message      string         `gorm:"size:255" json:"message"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
