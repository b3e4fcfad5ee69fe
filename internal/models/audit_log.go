package models

import "time"

// AuditLog records a mutation of the investment collection. Entries are
// always written to the audit logger and, with a SQL store, to the
// audit_logs table.
type AuditLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Action       string    `gorm:"not null" json:"action"`
	ResourceType string    `gorm:"not null" json:"resource_type"`
	ResourceID   string    `gorm:"index" json:"resource_id"`
	IPAddress    string    `json:"ip_address"`
	Changes      string    `json:"changes,omitempty"`
}
