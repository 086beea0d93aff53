package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyRepository handles database reads for properties
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// GetByID retrieves a property by ID
func (r *PropertyRepository) GetByID(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// ListByOrganization retrieves all properties for an organization with pagination
func (r *PropertyRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	query := r.db.Model(&models.Property{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("name").Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// UnitRepository handles database reads for units
type UnitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

// GetByID retrieves a unit by ID
func (r *UnitRepository) GetByID(id uuid.UUID) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.First(&unit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// ListByProperty retrieves all units for a property with pagination
func (r *UnitRepository) ListByProperty(propertyID uuid.UUID, limit, offset int) ([]models.Unit, int64, error) {
	var units []models.Unit
	var total int64

	query := r.db.Model(&models.Unit{}).Where("property_id = ?", propertyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("property_id = ?", propertyID).
		Limit(limit).Offset(offset).Order("label").Find(&units).Error
	if err != nil {
		return nil, 0, err
	}

	return units, total, nil
}

// HasUnits probes for the existence of at least one unit in the property.
// Bounded by Limit(1), never a full scan.
func (r *UnitRepository) HasUnits(propertyID uuid.UUID) (bool, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Unit{}).Where("property_id = ?", propertyID).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}
