package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditRepository handles database reads for the append-only audit log.
// Writes happen exclusively through batches; there is deliberately no
// update or delete here.
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// ListByOrganization retrieves audit entries for an organization, newest first
func (r *AuditRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.AuditLogEntry, int64, error) {
	var entries []models.AuditLogEntry
	var total int64

	query := r.db.Model(&models.AuditLogEntry{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("created_at desc").Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListByEntity retrieves the audit trail of one entity, oldest first
func (r *AuditRepository) ListByEntity(orgID uuid.UUID, entityType, entityID string) ([]models.AuditLogEntry, error) {
	var entries []models.AuditLogEntry
	err := r.db.Where("organization_id = ? AND entity_type = ? AND entity_id = ?", orgID, entityType, entityID).
		Order("created_at").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
