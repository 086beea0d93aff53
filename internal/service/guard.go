package service

import (
	"errors"
	"fmt"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IntegrityGuard keeps the denormalized tenant-lease relation consistent and
// enforces cascade-delete preconditions. Every write that touches either side
// of the relation goes through the guard, which folds the reciprocal updates
// into the caller's batch: one atomic unit, or nothing.
//
// The checks are read-then-decide without isolation from concurrent writers,
// matching the store's batch-only consistency model. Each check lives behind
// one method so a conditional-write primitive can replace it later without
// touching callers.
type IntegrityGuard struct {
	tenants repository.TenantRepositoryInterface
	cases   repository.CaseRepositoryInterface
	units   repository.UnitRepositoryInterface
}

// NewIntegrityGuard creates a new referential integrity guard
func NewIntegrityGuard(tenants repository.TenantRepositoryInterface, cases repository.CaseRepositoryInterface, units repository.UnitRepositoryInterface) *IntegrityGuard {
	return &IntegrityGuard{tenants: tenants, cases: cases, units: units}
}

// SyncLeaseCreate verifies every tenant on a new lease and queues the
// reciprocal "add lease to tenant.lease_ids" writes onto the batch
func (g *IntegrityGuard) SyncLeaseCreate(batch *repository.Batch, lease *models.Lease) error {
	tenants, err := g.loadLeaseTenants(lease)
	if err != nil {
		return err
	}
	for i := range tenants {
		tenant := tenants[i]
		tenant.LeaseIDs = tenant.LeaseIDs.Add(lease.ID)
		batch.Update(&models.Tenant{BaseModel: models.BaseModel{ID: tenant.ID}},
			map[string]interface{}{"lease_ids": tenant.LeaseIDs})
	}
	return nil
}

// SyncLeaseEnd queues the removal of the lease from every referenced
// tenant's lease_ids, for a lease transitioning to ended or terminated
func (g *IntegrityGuard) SyncLeaseEnd(batch *repository.Batch, lease *models.Lease) error {
	tenants, err := g.tenants.GetByIDs([]uuid.UUID(lease.TenantIDs))
	if err != nil {
		return fmt.Errorf("failed to load lease tenants: %w", err)
	}
	for i := range tenants {
		tenant := tenants[i]
		if !tenant.LeaseIDs.Contains(lease.ID) {
			continue
		}
		tenant.LeaseIDs = tenant.LeaseIDs.Remove(lease.ID)
		batch.Update(&models.Tenant{BaseModel: models.BaseModel{ID: tenant.ID}},
			map[string]interface{}{"lease_ids": tenant.LeaseIDs})
	}
	return nil
}

// GuardLeaseDelete permits hard deletion only for draft leases and queues
// the back-reference cleanup. Any other status must go through a status
// transition to ended or terminated instead.
func (g *IntegrityGuard) GuardLeaseDelete(batch *repository.Batch, lease *models.Lease) error {
	if lease.Status != models.LeaseStatusDraft {
		return apperrors.ErrLeaseNotDraft
	}
	return g.SyncLeaseEnd(batch, lease)
}

// GuardTenantDelete rejects deletion of a tenant still referenced by leases
func (g *IntegrityGuard) GuardTenantDelete(tenant *models.Tenant) error {
	if len(tenant.LeaseIDs) > 0 {
		return apperrors.ErrHasLeases
	}
	return nil
}

// GuardPropertyDelete rejects deletion of a property that still owns units,
// using a bounded existence probe rather than a full scan
func (g *IntegrityGuard) GuardPropertyDelete(property *models.Property) error {
	hasUnits, err := g.units.HasUnits(property.ID)
	if err != nil {
		return fmt.Errorf("failed to probe property units: %w", err)
	}
	if hasUnits {
		return apperrors.ErrHasChildren
	}
	return nil
}

// GuardUnitDelete rejects deletion of an occupied unit
func (g *IntegrityGuard) GuardUnitDelete(unit *models.Unit) error {
	if unit.Status == models.UnitStatusOccupied {
		return apperrors.ErrUnitOccupied
	}
	return nil
}

// GuardCaseDelete rejects deletion of a case that still owns tasks or
// documents, using bounded existence probes rather than full scans
func (g *IntegrityGuard) GuardCaseDelete(legalCase *models.LegalCase) error {
	hasTasks, err := g.cases.HasTasks(legalCase.ID)
	if err != nil {
		return fmt.Errorf("failed to probe case tasks: %w", err)
	}
	if hasTasks {
		return apperrors.ErrHasChildren
	}
	hasDocs, err := g.cases.HasDocuments(legalCase.ID)
	if err != nil {
		return fmt.Errorf("failed to probe case documents: %w", err)
	}
	if hasDocs {
		return apperrors.ErrHasChildren
	}
	return nil
}

// GuardOrganizationArchive rejects archiving an already-archived organization
func (g *IntegrityGuard) GuardOrganizationArchive(org *models.Organization) error {
	if org.Status == models.OrganizationStatusArchived {
		return apperrors.ErrAlreadyArchived
	}
	return nil
}

// GuardOrganizationRestore rejects restoring an organization that is not archived
func (g *IntegrityGuard) GuardOrganizationRestore(org *models.Organization) error {
	if org.Status != models.OrganizationStatusArchived {
		return apperrors.ErrNotArchived
	}
	return nil
}

// loadLeaseTenants loads every tenant referenced by the lease and verifies
// that all of them exist and belong to the lease's organization
func (g *IntegrityGuard) loadLeaseTenants(lease *models.Lease) ([]models.Tenant, error) {
	ids := []uuid.UUID(lease.TenantIDs)
	tenants, err := g.tenants.GetByIDs(ids)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to load lease tenants: %w", err)
	}
	if len(tenants) != len(ids) {
		return nil, apperrors.ErrTenantNotFound
	}
	for i := range tenants {
		if tenants[i].OrganizationID != lease.OrganizationID {
			return nil, apperrors.NewValidationError("tenant_ids", "tenant belongs to a different organization")
		}
	}
	return tenants, nil
}
