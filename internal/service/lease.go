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

// LeaseService handles business logic for leases. Every mutation that
// touches the tenant-lease relation goes through the integrity guard so the
// reciprocal tenant updates land in the same batch as the lease write.
type LeaseService struct {
	leases     repository.LeaseRepositoryInterface
	units      repository.UnitRepositoryInterface
	tenants    repository.TenantRepositoryInterface
	guard      *IntegrityGuard
	authorizer *Authorizer
	audit      *AuditRecorder
	committer  repository.BatchCommitter
	validator  *validator.Validate
}

// NewLeaseService creates a new lease service
func NewLeaseService(
	leases repository.LeaseRepositoryInterface,
	units repository.UnitRepositoryInterface,
	tenants repository.TenantRepositoryInterface,
	guard *IntegrityGuard,
	authorizer *Authorizer,
	audit *AuditRecorder,
	committer repository.BatchCommitter,
	validator *validator.Validate,
) *LeaseService {
	return &LeaseService{
		leases:     leases,
		units:      units,
		tenants:    tenants,
		guard:      guard,
		authorizer: authorizer,
		audit:      audit,
		committer:  committer,
		validator:  validator,
	}
}

// CreateLeaseRequest represents the request to create a lease
type CreateLeaseRequest struct {
	OrganizationID uuid.UUID   `json:"organization_id" validate:"required"`
	PropertyID     uuid.UUID   `json:"property_id" validate:"required"`
	UnitID         uuid.UUID   `json:"unit_id" validate:"required"`
	TenantIDs      []uuid.UUID `json:"tenant_ids" validate:"required,min=1"`
	StartDate      time.Time   `json:"start_date" validate:"required"`
	EndDate        *time.Time  `json:"end_date,omitempty"`
	MonthlyRent    float64     `json:"monthly_rent" validate:"gte=0"`
	DepositAmount  float64     `json:"deposit_amount" validate:"gte=0"`
	Activate       bool        `json:"activate"` // create as active instead of draft
}

// LeaseResponse represents the response data for a lease
type LeaseResponse struct {
	ID             uuid.UUID   `json:"id"`
	OrganizationID uuid.UUID   `json:"organization_id"`
	PropertyID     uuid.UUID   `json:"property_id"`
	UnitID         uuid.UUID   `json:"unit_id"`
	TenantIDs      []uuid.UUID `json:"tenant_ids"`
	Status         string      `json:"status"`
	StartDate      string      `json:"start_date"`
	EndDate        *string     `json:"end_date,omitempty"`
	MonthlyRent    float64     `json:"monthly_rent"`
	DepositAmount  float64     `json:"deposit_amount"`
	CreatedAt      string      `json:"created_at"`
	UpdatedAt      string      `json:"updated_at"`
}

// leaseSnapshot is the partial state recorded in audit entries
type leaseSnapshot struct {
	Status    models.LeaseStatus `json:"status,omitempty"`
	TenantIDs models.UUIDList    `json:"tenant_ids,omitempty"`
	UnitID    *uuid.UUID         `json:"unit_id,omitempty"`
}

// Create creates a lease and schedules the reciprocal tenant back-reference
// updates in the same batch
func (s *LeaseService) Create(ctx context.Context, actorID uuid.UUID, req *CreateLeaseRequest) (*LeaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.authorizer.Authorize(actorID, req.OrganizationID, leaseWriteRoles, PropertyScope(req.PropertyID)); err != nil {
		return nil, err
	}

	unit, err := s.units.GetByID(req.UnitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnitNotFound
		}
		return nil, fmt.Errorf("failed to load unit: %w", err)
	}
	if unit.PropertyID != req.PropertyID || unit.OrganizationID != req.OrganizationID {
		return nil, apperrors.NewValidationError("unit_id", "unit does not belong to the given property")
	}

	status := models.LeaseStatusDraft
	if req.Activate {
		status = models.LeaseStatusActive
	}
	lease := &models.Lease{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: req.OrganizationID,
		PropertyID:     req.PropertyID,
		UnitID:         req.UnitID,
		TenantIDs:      models.UUIDList(req.TenantIDs),
		Status:         status,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		MonthlyRent:    req.MonthlyRent,
		DepositAmount:  req.DepositAmount,
	}

	batch := repository.NewBatch()
	batch.Create(lease)
	if err := s.guard.SyncLeaseCreate(batch, lease); err != nil {
		return nil, err
	}
	err = s.audit.Record(batch, lease.OrganizationID, actorID, models.AuditActionCreate,
		"lease", lease.ID.String(), entityPath(lease.OrganizationID, "leases", lease.ID.String()),
		nil, leaseSnapshot{Status: lease.Status, TenantIDs: lease.TenantIDs, UnitID: &lease.UnitID})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit lease create: %w", err)
	}
	return s.toResponse(lease), nil
}

// UpdateStatus transitions a lease. A transition into ended or terminated
// removes the lease from every referenced tenant's back-references in the
// same batch. Terminal statuses cannot be left again.
func (s *LeaseService) UpdateStatus(ctx context.Context, actorID, leaseID uuid.UUID, newStatus models.LeaseStatus) (*LeaseResponse, error) {
	if !newStatus.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown lease status")
	}

	lease, err := s.loadLease(leaseID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(actorID, lease.OrganizationID, leaseWriteRoles, PropertyScope(lease.PropertyID)); err != nil {
		return nil, err
	}

	if lease.Status.IsTerminal() {
		return nil, apperrors.NewValidationError("status", "lease is already ended or terminated")
	}
	if newStatus == models.LeaseStatusDraft && lease.Status != models.LeaseStatusDraft {
		return nil, apperrors.NewValidationError("status", "lease cannot return to draft")
	}

	before := leaseSnapshot{Status: lease.Status}
	lease.Status = newStatus

	batch := repository.NewBatch()
	batch.Save(lease)
	if newStatus.IsTerminal() {
		if err := s.guard.SyncLeaseEnd(batch, lease); err != nil {
			return nil, err
		}
	}
	err = s.audit.Record(batch, lease.OrganizationID, actorID, models.AuditActionUpdate,
		"lease", lease.ID.String(), entityPath(lease.OrganizationID, "leases", lease.ID.String()),
		before, leaseSnapshot{Status: newStatus})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit lease status update: %w", err)
	}
	return s.toResponse(lease), nil
}

// Delete hard-deletes a lease. Only draft leases may be deleted; anything
// else must transition to ended or terminated instead.
func (s *LeaseService) Delete(ctx context.Context, actorID, leaseID uuid.UUID) error {
	lease, err := s.loadLease(leaseID)
	if err != nil {
		return err
	}
	if _, err := s.authorizer.Authorize(actorID, lease.OrganizationID, leaseWriteRoles, PropertyScope(lease.PropertyID)); err != nil {
		return err
	}

	batch := repository.NewBatch()
	if err := s.guard.GuardLeaseDelete(batch, lease); err != nil {
		return err
	}
	batch.Delete(&models.Lease{BaseModel: models.BaseModel{ID: lease.ID}})
	err = s.audit.Record(batch, lease.OrganizationID, actorID, models.AuditActionDelete,
		"lease", lease.ID.String(), entityPath(lease.OrganizationID, "leases", lease.ID.String()),
		leaseSnapshot{Status: lease.Status, TenantIDs: lease.TenantIDs}, nil)
	if err != nil {
		return err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return fmt.Errorf("failed to commit lease delete: %w", err)
	}
	return nil
}

// GetByID retrieves a lease. Any active member in scope may read it; a
// tenant-role member may only read leases referencing their own tenant
// identity.
func (s *LeaseService) GetByID(actorID, leaseID uuid.UUID) (*LeaseResponse, error) {
	lease, err := s.loadLease(leaseID)
	if err != nil {
		return nil, err
	}
	membership, err := s.authorizer.Authorize(actorID, lease.OrganizationID, AllRoles(), PropertyScope(lease.PropertyID))
	if err != nil {
		return nil, err
	}
	if err := s.checkTenantSelfAccess(membership, lease); err != nil {
		return nil, err
	}
	return s.toResponse(lease), nil
}

// ListByOrganization retrieves the leases of an organization
func (s *LeaseService) ListByOrganization(actorID, orgID uuid.UUID, limit, offset int) ([]LeaseResponse, int64, error) {
	membership, err := s.authorizer.Authorize(actorID, orgID, AllRoles())
	if err != nil {
		return nil, 0, err
	}

	leases, total, err := s.leases.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leases: %w", err)
	}

	responses := make([]LeaseResponse, 0, len(leases))
	for i := range leases {
		if !membership.PropertyInScope(leases[i].PropertyID) {
			continue
		}
		if err := s.checkTenantSelfAccess(membership, &leases[i]); err != nil {
			continue
		}
		responses = append(responses, *s.toResponse(&leases[i]))
	}
	return responses, total, nil
}

// checkTenantSelfAccess restricts tenant-role members to leases that
// reference their own tenant identity
func (s *LeaseService) checkTenantSelfAccess(membership *models.Membership, lease *models.Lease) error {
	if membership.Role != models.MembershipRoleTenant {
		return nil
	}
	tenants, err := s.tenants.GetByIDs([]uuid.UUID(lease.TenantIDs))
	if err != nil {
		return fmt.Errorf("failed to load lease tenants: %w", err)
	}
	for i := range tenants {
		if tenants[i].UserID != nil && *tenants[i].UserID == membership.UserID {
			return nil
		}
	}
	return apperrors.ErrOutOfScope
}

func (s *LeaseService) loadLease(leaseID uuid.UUID) (*models.Lease, error) {
	lease, err := s.leases.GetByID(leaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaseNotFound
		}
		return nil, fmt.Errorf("failed to get lease: %w", err)
	}
	return lease, nil
}

func (s *LeaseService) toResponse(lease *models.Lease) *LeaseResponse {
	resp := &LeaseResponse{
		ID:             lease.ID,
		OrganizationID: lease.OrganizationID,
		PropertyID:     lease.PropertyID,
		UnitID:         lease.UnitID,
		TenantIDs:      lease.TenantIDs,
		Status:         string(lease.Status),
		StartDate:      lease.StartDate.Format(time.RFC3339),
		MonthlyRent:    lease.MonthlyRent,
		DepositAmount:  lease.DepositAmount,
		CreatedAt:      lease.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      lease.UpdatedAt.Format(time.RFC3339),
	}
	if lease.EndDate != nil {
		end := lease.EndDate.Format(time.RFC3339)
		resp.EndDate = &end
	}
	return resp
}
