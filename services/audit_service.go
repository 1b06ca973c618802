package services

import (
	"encoding/json"
	"log"

	"travel-admin/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditService records mutating admin actions locally and feeds the recent
// activity list. Recording is best-effort: a failed audit write never fails
// the action it describes.
type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

func (s *AuditService) Record(actor, action, entity, entityID string, detail any) {
	entry := models.AuditEntry{
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
	if detail != nil {
		if raw, err := json.Marshal(detail); err == nil {
			entry.Detail = datatypes.JSON(raw)
		}
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("warning: failed to record audit entry (%s %s %s): %v", action, entity, entityID, err)
	}
}

// Recent returns the newest entries, most recent first.
func (s *AuditService) Recent(limit int) ([]models.AuditEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var entries []models.AuditEntry
	err := s.DB.Order("id DESC").Limit(limit).Find(&entries).Error
	if entries == nil {
		entries = []models.AuditEntry{}
	}
	return entries, err
}
