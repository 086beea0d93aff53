package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaseRepository handles database reads for leases
type LeaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository creates a new lease repository
func NewLeaseRepository(db *gorm.DB) *LeaseRepository {
	return &LeaseRepository{db: db}
}

// GetByID retrieves a lease by ID
func (r *LeaseRepository) GetByID(id uuid.UUID) (*models.Lease, error) {
	var lease models.Lease
	err := r.db.First(&lease, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lease, nil
}

// ListByOrganization retrieves all leases for an organization with pagination
func (r *LeaseRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Lease, int64, error) {
	var leases []models.Lease
	var total int64

	query := r.db.Model(&models.Lease{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("created_at desc").Find(&leases).Error
	if err != nil {
		return nil, 0, err
	}

	return leases, total, nil
}

// ListByUnit retrieves all leases referencing a unit
func (r *LeaseRepository) ListByUnit(unitID uuid.UUID) ([]models.Lease, error) {
	var leases []models.Lease
	err := r.db.Where("unit_id = ?", unitID).Order("created_at desc").Find(&leases).Error
	if err != nil {
		return nil, err
	}
	return leases, nil
}
