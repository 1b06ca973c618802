package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditEntry records one mutating admin action that went through the gateway
// (approve/reject, cancel, delete, mark-paid, saves). Feeds the recent
// activity feed.
type AuditEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Actor     string         `gorm:"size:150;index" json:"actor"`
	Action    string         `gorm:"size:64" json:"action"`
	Entity    string         `gorm:"size:64;index" json:"entity"`
	EntityID  string         `gorm:"size:64" json:"entityId"`
	Detail    datatypes.JSON `gorm:"column:detail" json:"detail,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
