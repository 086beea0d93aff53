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

// TenantService handles business logic for tenants. The LeaseIDs
// back-reference is owned by the integrity guard; this service never writes
// it directly.
type TenantService struct {
	tenants    repository.TenantRepositoryInterface
	guard      *IntegrityGuard
	authorizer *Authorizer
	audit      *AuditRecorder
	committer  repository.BatchCommitter
	validator  *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(
	tenants repository.TenantRepositoryInterface,
	guard *IntegrityGuard,
	authorizer *Authorizer,
	audit *AuditRecorder,
	committer repository.BatchCommitter,
	validator *validator.Validate,
) *TenantService {
	return &TenantService{
		tenants:    tenants,
		guard:      guard,
		authorizer: authorizer,
		audit:      audit,
		committer:  committer,
		validator:  validator,
	}
}

// CreateTenantRequest represents the request to create a tenant
type CreateTenantRequest struct {
	OrganizationID uuid.UUID            `json:"organization_id" validate:"required"`
	Profile        models.TenantProfile `json:"profile"`
	UserID         *uuid.UUID           `json:"user_id,omitempty"`
}

// UpdateTenantRequest represents the request to update a tenant's profile
type UpdateTenantRequest struct {
	Profile *models.TenantProfile `json:"profile,omitempty"`
	UserID  *uuid.UUID            `json:"user_id,omitempty"`
}

// TenantResponse represents the response data for a tenant
type TenantResponse struct {
	ID             uuid.UUID            `json:"id"`
	OrganizationID uuid.UUID            `json:"organization_id"`
	Profile        models.TenantProfile `json:"profile"`
	DisplayName    string               `json:"display_name"`
	LeaseIDs       []uuid.UUID          `json:"lease_ids"`
	UserID         *uuid.UUID           `json:"user_id,omitempty"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

// tenantSnapshot is the partial state recorded in audit entries
type tenantSnapshot struct {
	Profile  *models.TenantProfile `json:"profile,omitempty"`
	LeaseIDs models.UUIDSet        `json:"lease_ids,omitempty"`
}

// Create creates a tenant. The discriminated profile must carry exactly the
// shape its kind declares.
func (s *TenantService) Create(ctx context.Context, actorID uuid.UUID, req *CreateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := req.Profile.Validate(); err != nil {
		return nil, apperrors.NewValidationError("profile", err.Error())
	}

	if _, err := s.authorizer.Authorize(actorID, req.OrganizationID, propertyWriteRoles); err != nil {
		return nil, err
	}

	tenant := &models.Tenant{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: req.OrganizationID,
		Profile:        req.Profile,
		LeaseIDs:       models.UUIDSet{},
		UserID:         req.UserID,
	}

	batch := repository.NewBatch()
	batch.Create(tenant)
	err := s.audit.Record(batch, tenant.OrganizationID, actorID, models.AuditActionCreate,
		"tenant", tenant.ID.String(), entityPath(tenant.OrganizationID, "tenants", tenant.ID.String()),
		nil, tenantSnapshot{Profile: &tenant.Profile})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit tenant create: %w", err)
	}
	return s.toResponse(tenant), nil
}

// Update changes a tenant's profile or portal identity
func (s *TenantService) Update(ctx context.Context, actorID, tenantID uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.loadTenant(tenantID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(actorID, tenant.OrganizationID, propertyWriteRoles); err != nil {
		return nil, err
	}

	before := tenantSnapshot{Profile: &tenant.Profile}
	if req.Profile != nil {
		if err := req.Profile.Validate(); err != nil {
			return nil, apperrors.NewValidationError("profile", err.Error())
		}
		tenant.Profile = *req.Profile
	}
	if req.UserID != nil {
		tenant.UserID = req.UserID
	}

	batch := repository.NewBatch()
	batch.Save(tenant)
	err = s.audit.Record(batch, tenant.OrganizationID, actorID, models.AuditActionUpdate,
		"tenant", tenant.ID.String(), entityPath(tenant.OrganizationID, "tenants", tenant.ID.String()),
		before, tenantSnapshot{Profile: &tenant.Profile})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit tenant update: %w", err)
	}
	return s.toResponse(tenant), nil
}

// Delete hard-deletes a tenant. A tenant still referenced by any lease may
// not be deleted.
func (s *TenantService) Delete(ctx context.Context, actorID, tenantID uuid.UUID) error {
	tenant, err := s.loadTenant(tenantID)
	if err != nil {
		return err
	}
	if _, err := s.authorizer.Authorize(actorID, tenant.OrganizationID, propertyWriteRoles); err != nil {
		return err
	}

	if err := s.guard.GuardTenantDelete(tenant); err != nil {
		return err
	}

	batch := repository.NewBatch()
	batch.Delete(&models.Tenant{BaseModel: models.BaseModel{ID: tenant.ID}})
	err = s.audit.Record(batch, tenant.OrganizationID, actorID, models.AuditActionDelete,
		"tenant", tenant.ID.String(), entityPath(tenant.OrganizationID, "tenants", tenant.ID.String()),
		tenantSnapshot{Profile: &tenant.Profile}, nil)
	if err != nil {
		return err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return fmt.Errorf("failed to commit tenant delete: %w", err)
	}
	return nil
}

// GetByID retrieves a tenant. Tenant-role members may only read themselves.
func (s *TenantService) GetByID(actorID, tenantID uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.loadTenant(tenantID)
	if err != nil {
		return nil, err
	}
	membership, err := s.authorizer.Authorize(actorID, tenant.OrganizationID, AllRoles())
	if err != nil {
		return nil, err
	}
	if membership.Role == models.MembershipRoleTenant {
		if tenant.UserID == nil || *tenant.UserID != membership.UserID {
			return nil, apperrors.ErrOutOfScope
		}
	}
	return s.toResponse(tenant), nil
}

// ListByOrganization retrieves the tenants of an organization
func (s *TenantService) ListByOrganization(actorID, orgID uuid.UUID, limit, offset int) ([]TenantResponse, int64, error) {
	membership, err := s.authorizer.Authorize(actorID, orgID, AllRoles())
	if err != nil {
		return nil, 0, err
	}

	tenants, total, err := s.tenants.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}

	responses := make([]TenantResponse, 0, len(tenants))
	for i := range tenants {
		if membership.Role == models.MembershipRoleTenant {
			if tenants[i].UserID == nil || *tenants[i].UserID != membership.UserID {
				continue
			}
		}
		responses = append(responses, *s.toResponse(&tenants[i]))
	}
	return responses, total, nil
}

func (s *TenantService) loadTenant(tenantID uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.tenants.GetByID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenant, nil
}

func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:             tenant.ID,
		OrganizationID: tenant.OrganizationID,
		Profile:        tenant.Profile,
		DisplayName:    tenant.Profile.DisplayName(),
		LeaseIDs:       tenant.LeaseIDs,
		UserID:         tenant.UserID,
		CreatedAt:      tenant.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      tenant.UpdatedAt.Format(time.RFC3339),
	}
}
