package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyService handles business logic for properties and units
type PropertyService struct {
	properties repository.PropertyRepositoryInterface
	units      repository.UnitRepositoryInterface
	guard      *IntegrityGuard
	authorizer *Authorizer
	audit      *AuditRecorder
	committer  repository.BatchCommitter
	validator  *validator.Validate
}

// NewPropertyService creates a new property service
func NewPropertyService(
	properties repository.PropertyRepositoryInterface,
	units repository.UnitRepositoryInterface,
	guard *IntegrityGuard,
	authorizer *Authorizer,
	audit *AuditRecorder,
	committer repository.BatchCommitter,
	validator *validator.Validate,
) *PropertyService {
	return &PropertyService{
		properties: properties,
		units:      units,
		guard:      guard,
		authorizer: authorizer,
		audit:      audit,
		committer:  committer,
		validator:  validator,
	}
}

// CreatePropertyRequest represents the request to create a property
type CreatePropertyRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Name           string    `json:"name" validate:"required,max=200"`
	AddressLine1   string    `json:"address_line1" validate:"required,max=200"`
	AddressLine2   string    `json:"address_line2" validate:"max=200"`
	City           string    `json:"city" validate:"required,max=100"`
	State          string    `json:"state" validate:"max=50"`
	PostalCode     string    `json:"postal_code" validate:"max=20"`
}

// PropertyResponse represents the response data for a property
type PropertyResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	AddressLine1   string    `json:"address_line1"`
	AddressLine2   string    `json:"address_line2,omitempty"`
	City           string    `json:"city"`
	State          string    `json:"state,omitempty"`
	PostalCode     string    `json:"postal_code,omitempty"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// UpdatePropertyRequest represents the request to update a property.
// Nil fields are left unchanged.
type UpdatePropertyRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=200"`
	AddressLine1 *string `json:"address_line1,omitempty" validate:"omitempty,max=200"`
	AddressLine2 *string `json:"address_line2,omitempty" validate:"omitempty,max=200"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State        *string `json:"state,omitempty" validate:"omitempty,max=50"`
	PostalCode   *string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
}

// CreateUnitRequest represents the request to create a unit
type CreateUnitRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	Label      string    `json:"label" validate:"required,max=50"`
	Bedrooms   int       `json:"bedrooms" validate:"gte=0"`
	Bathrooms  float64   `json:"bathrooms" validate:"gte=0"`
	SquareFeet int       `json:"square_feet" validate:"gte=0"`
}

// UnitResponse represents the response data for a unit
type UnitResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	PropertyID     uuid.UUID `json:"property_id"`
	Label          string    `json:"label"`
	Status         string    `json:"status"`
	Bedrooms       int       `json:"bedrooms"`
	Bathrooms      float64   `json:"bathrooms"`
	SquareFeet     int       `json:"square_feet"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// CreateProperty creates a property
func (s *PropertyService) CreateProperty(ctx context.Context, actorID uuid.UUID, req *CreatePropertyRequest) (*PropertyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.authorizer.Authorize(actorID, req.OrganizationID, propertyWriteRoles); err != nil {
		return nil, err
	}

	property := &models.Property{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		AddressLine1:   req.AddressLine1,
		AddressLine2:   req.AddressLine2,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
	}

	batch := repository.NewBatch()
	batch.Create(property)
	err := s.audit.Record(batch, property.OrganizationID, actorID, models.AuditActionCreate,
		"property", property.ID.String(), entityPath(property.OrganizationID, "properties", property.ID.String()),
		nil, map[string]interface{}{"name": property.Name, "city": property.City})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit property create: %w", err)
	}
	return s.toPropertyResponse(property), nil
}

// GetProperty retrieves a property visible to the actor
func (s *PropertyService) GetProperty(actorID, propertyID uuid.UUID) (*PropertyResponse, error) {
	property, err := s.loadProperty(propertyID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(actorID, property.OrganizationID, AllRoles(), PropertyScope(property.ID)); err != nil {
		return nil, err
	}
	return s.toPropertyResponse(property), nil
}

// UpdateProperty applies a partial update to a property
func (s *PropertyService) UpdateProperty(ctx context.Context, actorID, propertyID uuid.UUID, req *UpdatePropertyRequest) (*PropertyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	property, err := s.loadProperty(propertyID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(actorID, property.OrganizationID, propertyWriteRoles, PropertyScope(property.ID)); err != nil {
		return nil, err
	}

	before := map[string]interface{}{}
	after := map[string]interface{}{}
	updates := map[string]interface{}{}
	apply := func(column string, current string, next *string, set func(string)) {
		if next == nil || *next == current {
			return
		}
		before[column] = current
		after[column] = *next
		updates[column] = *next
		set(*next)
	}
	apply("name", property.Name, req.Name, func(v string) { property.Name = v })
	apply("address_line1", property.AddressLine1, req.AddressLine1, func(v string) { property.AddressLine1 = v })
	apply("address_line2", property.AddressLine2, req.AddressLine2, func(v string) { property.AddressLine2 = v })
	apply("city", property.City, req.City, func(v string) { property.City = v })
	apply("state", property.State, req.State, func(v string) { property.State = v })
	apply("postal_code", property.PostalCode, req.PostalCode, func(v string) { property.PostalCode = v })

	if len(updates) == 0 {
		return s.toPropertyResponse(property), nil
	}

	batch := repository.NewBatch()
	batch.Update(&models.Property{BaseModel: models.BaseModel{ID: property.ID}}, updates)
	err = s.audit.Record(batch, property.OrganizationID, actorID, models.AuditActionUpdate,
		"property", property.ID.String(), entityPath(property.OrganizationID, "properties", property.ID.String()),
		before, after)
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit property update: %w", err)
	}
	return s.toPropertyResponse(property), nil
}

// DeleteProperty hard-deletes a property. Properties that still own units
// may not be deleted.
func (s *PropertyService) DeleteProperty(ctx context.Context, actorID, propertyID uuid.UUID) error {
	property, err := s.loadProperty(propertyID)
	if err != nil {
		return err
	}
	if _, err := s.authorizer.Authorize(actorID, property.OrganizationID, propertyWriteRoles, PropertyScope(property.ID)); err != nil {
		return err
	}

	if err := s.guard.GuardPropertyDelete(property); err != nil {
		return err
	}

	batch := repository.NewBatch()
	batch.Delete(&models.Property{BaseModel: models.BaseModel{ID: property.ID}})
	err = s.audit.Record(batch, property.OrganizationID, actorID, models.AuditActionDelete,
		"property", property.ID.String(), entityPath(property.OrganizationID, "properties", property.ID.String()),
		map[string]interface{}{"name": property.Name, "city": property.City}, nil)
	if err != nil {
		return err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return fmt.Errorf("failed to commit property delete: %w", err)
	}
	return nil
}

// ListProperties retrieves the properties of an organization the actor may see
func (s *PropertyService) ListProperties(actorID, orgID uuid.UUID, limit, offset int) ([]PropertyResponse, int64, error) {
	membership, err := s.authorizer.Authorize(actorID, orgID, AllRoles())
	if err != nil {
		return nil, 0, err
	}

	properties, total, err := s.properties.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list properties: %w", err)
	}

	responses := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		if !membership.PropertyInScope(properties[i].ID) {
			continue
		}
		responses = append(responses, *s.toPropertyResponse(&properties[i]))
	}
	return responses, total, nil
}

// CreateUnit creates a unit under a property
func (s *PropertyService) CreateUnit(ctx context.Context, actorID uuid.UUID, req *CreateUnitRequest) (*UnitResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	property, err := s.loadProperty(req.PropertyID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(actorID, property.OrganizationID, propertyWriteRoles, PropertyScope(property.ID)); err != nil {
		return nil, err
	}

	unit := &models.Unit{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: property.OrganizationID,
		PropertyID:     property.ID,
		Label:          req.Label,
		Status:         models.UnitStatusVacant,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		SquareFeet:     req.SquareFeet,
	}

	batch := repository.NewBatch()
	batch.Create(unit)
	err = s.audit.Record(batch, unit.OrganizationID, actorID, models.AuditActionCreate,
		"unit", unit.ID.String(), entityPath(unit.OrganizationID, "units", unit.ID.String()),
		nil, map[string]interface{}{"label": unit.Label, "status": unit.Status})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit unit create: %w", err)
	}
	return s.toUnitResponse(unit), nil
}

// UpdateUnitStatus transitions a unit's occupancy status. Maintenance-role
// members may flip units between vacant, maintenance, and offline.
func (s *PropertyService) UpdateUnitStatus(ctx context.Context, actorID, unitID uuid.UUID, status models.UnitStatus) (*UnitResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown unit status")
	}

	unit, err := s.loadUnit(unitID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(actorID, unit.OrganizationID, unitStatusRoles, PropertyScope(unit.PropertyID)); err != nil {
		return nil, err
	}

	before := map[string]interface{}{"status": unit.Status}
	unit.Status = status

	batch := repository.NewBatch()
	batch.Update(&models.Unit{BaseModel: models.BaseModel{ID: unit.ID}},
		map[string]interface{}{"status": status})
	err = s.audit.Record(batch, unit.OrganizationID, actorID, models.AuditActionUpdate,
		"unit", unit.ID.String(), entityPath(unit.OrganizationID, "units", unit.ID.String()),
		before, map[string]interface{}{"status": status})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit unit status update: %w", err)
	}
	return s.toUnitResponse(unit), nil
}

// DeleteUnit hard-deletes a unit. Occupied units may not be deleted.
func (s *PropertyService) DeleteUnit(ctx context.Context, actorID, unitID uuid.UUID) error {
	unit, err := s.loadUnit(unitID)
	if err != nil {
		return err
	}
	if _, err := s.authorizer.Authorize(actorID, unit.OrganizationID, propertyWriteRoles, PropertyScope(unit.PropertyID)); err != nil {
		return err
	}

	if err := s.guard.GuardUnitDelete(unit); err != nil {
		return err
	}

	batch := repository.NewBatch()
	batch.Delete(&models.Unit{BaseModel: models.BaseModel{ID: unit.ID}})
	err = s.audit.Record(batch, unit.OrganizationID, actorID, models.AuditActionDelete,
		"unit", unit.ID.String(), entityPath(unit.OrganizationID, "units", unit.ID.String()),
		map[string]interface{}{"label": unit.Label, "status": unit.Status}, nil)
	if err != nil {
		return err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return fmt.Errorf("failed to commit unit delete: %w", err)
	}
	return nil
}

// ListUnits retrieves the units of a property
func (s *PropertyService) ListUnits(actorID, propertyID uuid.UUID, limit, offset int) ([]UnitResponse, int64, error) {
	property, err := s.loadProperty(propertyID)
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.authorizer.Authorize(actorID, property.OrganizationID, AllRoles(), PropertyScope(property.ID)); err != nil {
		return nil, 0, err
	}

	units, total, err := s.units.ListByProperty(propertyID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list units: %w", err)
	}

	responses := make([]UnitResponse, len(units))
	for i := range units {
		responses[i] = *s.toUnitResponse(&units[i])
	}
	return responses, total, nil
}

func (s *PropertyService) loadProperty(propertyID uuid.UUID) (*models.Property, error) {
	property, err := s.properties.GetByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return property, nil
}

func (s *PropertyService) loadUnit(unitID uuid.UUID) (*models.Unit, error) {
	unit, err := s.units.GetByID(unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnitNotFound
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}
	return unit, nil
}

func (s *PropertyService) toPropertyResponse(p *models.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		AddressLine1:   p.AddressLine1,
		AddressLine2:   p.AddressLine2,
		City:           p.City,
		State:          p.State,
		PostalCode:     p.PostalCode,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *PropertyService) toUnitResponse(u *models.Unit) *UnitResponse {
	return &UnitResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		PropertyID:     u.PropertyID,
		Label:          u.Label,
		Status:         string(u.Status),
		Bedrooms:       u.Bedrooms,
		Bathrooms:      u.Bathrooms,
		SquareFeet:     u.SquareFeet,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      u.UpdatedAt.Format(time.RFC3339),
	}
}
