package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database reads for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByIDs retrieves the tenants with the given IDs. Callers are expected to
// check that every requested ID came back.
func (r *TenantRepository) GetByIDs(ids []uuid.UUID) ([]models.Tenant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tenants []models.Tenant
	err := r.db.Where("id IN ?", ids).Find(&tenants).Error
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

// ListByOrganization retrieves all tenants for an organization with pagination
func (r *TenantRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	query := r.db.Model(&models.Tenant{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("created_at").Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}
