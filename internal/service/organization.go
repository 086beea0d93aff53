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

// OrganizationService handles business logic for organizations. Creation
// seeds the first active admin membership in the same batch as the
// organization itself, so an organization can never exist without an admin.
type OrganizationService struct {
	orgs        repository.OrganizationRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	guard       *IntegrityGuard
	authorizer  *Authorizer
	audit       *AuditRecorder
	committer   repository.BatchCommitter
	validator   *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgs repository.OrganizationRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	guard *IntegrityGuard,
	authorizer *Authorizer,
	audit *AuditRecorder,
	committer repository.BatchCommitter,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		orgs:        orgs,
		memberships: memberships,
		guard:       guard,
		authorizer:  authorizer,
		audit:       audit,
		committer:   committer,
		validator:   validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name         string                       `json:"name" validate:"required,min=1,max=200"`
	TaxRefSuffix string                       `json:"tax_ref_suffix" validate:"omitempty,len=4,numeric"`
	Settings     *models.OrganizationSettings `json:"settings,omitempty"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name         *string                      `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	TaxRefSuffix *string                      `json:"tax_ref_suffix,omitempty" validate:"omitempty,len=4,numeric"`
	Settings     *models.OrganizationSettings `json:"settings,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID           uuid.UUID                   `json:"id"`
	Name         string                      `json:"name"`
	TaxRefSuffix string                      `json:"tax_ref_suffix,omitempty"`
	Settings     models.OrganizationSettings `json:"settings"`
	Status       string                      `json:"status"`
	CreatedAt    string                      `json:"created_at"`
	UpdatedAt    string                      `json:"updated_at"`
}

// organizationSnapshot is the partial state recorded in audit entries
type organizationSnapshot struct {
	Name     string                       `json:"name,omitempty"`
	Status   models.OrganizationStatus    `json:"status,omitempty"`
	Settings *models.OrganizationSettings `json:"settings,omitempty"`
}

// Create creates an organization with the creating user as its first active
// admin. Both records and the audit entry commit as one batch.
func (s *OrganizationService) Create(ctx context.Context, creatorUserID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	settings := models.OrganizationSettings{Timezone: "UTC", Currency: "USD"}
	if req.Settings != nil {
		settings = *req.Settings
	}

	now := time.Now()
	org := &models.Organization{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         req.Name,
		TaxRefSuffix: req.TaxRefSuffix,
		Settings:     settings,
		Status:       models.OrganizationStatusActive,
	}
	membership := &models.Membership{
		OrganizationID: org.ID,
		UserID:         creatorUserID,
		Role:           models.MembershipRoleAdmin,
		Status:         models.MembershipStatusActive,
		InvitedBy:      creatorUserID,
		InvitedAt:      now,
		JoinedAt:       &now,
	}

	batch := repository.NewBatch()
	batch.Create(org)
	batch.Create(membership)
	err := s.audit.Record(batch, org.ID, creatorUserID, models.AuditActionCreate,
		"organization", org.ID.String(), entityPath(org.ID),
		nil, organizationSnapshot{Name: org.Name, Status: org.Status, Settings: &org.Settings})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit organization create: %w", err)
	}

	return s.toResponse(org), nil
}

// GetByID retrieves an organization. Any active member may read it.
func (s *OrganizationService) GetByID(actorID, orgID uuid.UUID) (*OrganizationResponse, error) {
	if _, err := s.authorizer.Authorize(actorID, orgID, AllRoles()); err != nil {
		return nil, err
	}
	org, err := s.loadOrganization(orgID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(org), nil
}

// ListForUser retrieves every organization the user holds a membership in
func (s *OrganizationService) ListForUser(userID uuid.UUID) ([]OrganizationResponse, error) {
	memberships, err := s.memberships.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	responses := make([]OrganizationResponse, 0, len(memberships))
	for i := range memberships {
		org, err := s.orgs.GetByID(memberships[i].OrganizationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load organization: %w", err)
		}
		responses = append(responses, *s.toResponse(org))
	}
	return responses, nil
}

// Update changes the organization's name, tax-reference suffix, or settings.
// Admin only.
func (s *OrganizationService) Update(ctx context.Context, actorID, orgID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.authorizer.Authorize(actorID, orgID, adminOnly); err != nil {
		return nil, err
	}

	org, err := s.loadOrganization(orgID)
	if err != nil {
		return nil, err
	}

	before := organizationSnapshot{Name: org.Name, Settings: &org.Settings}
	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.TaxRefSuffix != nil {
		org.TaxRefSuffix = *req.TaxRefSuffix
	}
	if req.Settings != nil {
		org.Settings = *req.Settings
	}

	batch := repository.NewBatch()
	batch.Save(org)
	err = s.audit.Record(batch, orgID, actorID, models.AuditActionUpdate,
		"organization", orgID.String(), entityPath(orgID),
		before, organizationSnapshot{Name: org.Name, Settings: &org.Settings})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit organization update: %w", err)
	}
	return s.toResponse(org), nil
}

// Archive soft-deletes an organization. Organizations are never hard-deleted;
// archiving an already-archived organization is a conflict.
func (s *OrganizationService) Archive(ctx context.Context, actorID, orgID uuid.UUID) (*OrganizationResponse, error) {
	return s.setStatus(ctx, actorID, orgID, models.OrganizationStatusArchived)
}

// Restore brings an archived organization back. Restoring an organization
// that is not archived is a conflict.
func (s *OrganizationService) Restore(ctx context.Context, actorID, orgID uuid.UUID) (*OrganizationResponse, error) {
	return s.setStatus(ctx, actorID, orgID, models.OrganizationStatusActive)
}

func (s *OrganizationService) setStatus(ctx context.Context, actorID, orgID uuid.UUID, status models.OrganizationStatus) (*OrganizationResponse, error) {
	if _, err := s.authorizer.Authorize(actorID, orgID, adminOnly); err != nil {
		return nil, err
	}

	org, err := s.loadOrganization(orgID)
	if err != nil {
		return nil, err
	}

	action := models.AuditActionArchive
	if status == models.OrganizationStatusArchived {
		if err := s.guard.GuardOrganizationArchive(org); err != nil {
			return nil, err
		}
	} else {
		if err := s.guard.GuardOrganizationRestore(org); err != nil {
			return nil, err
		}
		action = models.AuditActionRestore
	}

	before := organizationSnapshot{Status: org.Status}
	org.Status = status

	batch := repository.NewBatch()
	batch.Update(&models.Organization{BaseModel: models.BaseModel{ID: orgID}},
		map[string]interface{}{"status": status})
	err = s.audit.Record(batch, orgID, actorID, action,
		"organization", orgID.String(), entityPath(orgID),
		before, organizationSnapshot{Status: status})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit organization status change: %w", err)
	}
	return s.toResponse(org), nil
}

func (s *OrganizationService) loadOrganization(orgID uuid.UUID) (*models.Organization, error) {
	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		TaxRefSuffix: org.TaxRefSuffix,
		Settings:     org.Settings,
		Status:       string(org.Status),
		CreatedAt:    org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    org.UpdatedAt.Format(time.RFC3339),
	}
}
