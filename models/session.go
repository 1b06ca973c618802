package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is one logged-in dashboard session. A token's presence (and not
// being revoked) is the whole authentication check; there is no expiry and no
// refresh, only explicit logout.
type Session struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Token      string         `gorm:"uniqueIndex;size:128" json:"-"`
	Email      string         `gorm:"size:150" json:"email"`
	CreatedAt  time.Time      `json:"created_at"`
	LastSeenAt *time.Time     `json:"last_seen_at,omitempty"`
	RevokedAt  *time.Time     `json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Session) Active() bool {
	return s != nil && s.RevokedAt == nil
}
