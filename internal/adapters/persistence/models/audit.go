package models

import (
	"time"

	"gorm.io/gorm"
)

// AuditLog represents the audit_logs table of the SQL audit store
type AuditLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EventID      string    `gorm:"size:36;uniqueIndex;not null" json:"event_id"`
	ActorID      string    `gorm:"size:24;index" json:"actor_id"`
	ActorRole    string    `gorm:"size:20" json:"actor_role"`
	Action       string    `gorm:"size:50;index;not null" json:"action"`
	ResourceType string    `gorm:"size:30;not null" json:"resource_type"`
	ResourceID   string    `gorm:"size:24;index" json:"resource_id"`
	Detail       string    `gorm:"type:text" json:"detail"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// AutoMigrate creates the audit tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&AuditLog{})
}
