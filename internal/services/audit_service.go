package services

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"finalloc/internal/logger"
	"finalloc/internal/models"
)

// Audit actions.
const (
	AuditCreate = "create"
	AuditUpdate = "update"
	AuditDelete = "delete"
)

// auditService handles audit log recording.
type auditService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewAuditService creates a new AuditServicer. With a nil db entries only
// go to the audit logger.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db, log: logger.Named("audit")}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			s.log.Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	s.log.Infow("audit",
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
		"ip_address", ipAddress,
		"changes", changesJSON,
	)

	if s.db == nil {
		return
	}

	entry := &models.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		s.log.Errorw("failed to create audit log entry",
			"error", err,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}
