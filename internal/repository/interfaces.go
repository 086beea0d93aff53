package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines read operations for organizations.
// All mutations flow through a Batch so that side effects and audit entries
// commit atomically with the primary write.
type OrganizationRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
}

// MembershipRepositoryInterface defines read operations for memberships
type MembershipRepositoryInterface interface {
	Get(orgID, userID uuid.UUID) (*models.Membership, error)
	GetWithUser(orgID, userID uuid.UUID) (*models.Membership, error)
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Membership, int64, error)
	ListByUser(userID uuid.UUID) ([]models.Membership, error)
	CountActiveAdmins(orgID uuid.UUID, excludeUserID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines read operations for directory users
type UserRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// PropertyRepositoryInterface defines read operations for properties
type PropertyRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Property, error)
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Property, int64, error)
}

// UnitRepositoryInterface defines read operations for units
type UnitRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Unit, error)
	ListByProperty(propertyID uuid.UUID, limit, offset int) ([]models.Unit, int64, error)
	HasUnits(propertyID uuid.UUID) (bool, error)
}

// TenantRepositoryInterface defines read operations for tenants
type TenantRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByIDs(ids []uuid.UUID) ([]models.Tenant, error)
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Tenant, int64, error)
}

// LeaseRepositoryInterface defines read operations for leases
type LeaseRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Lease, error)
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Lease, int64, error)
	ListByUnit(unitID uuid.UUID) ([]models.Lease, error)
}

// CaseRepositoryInterface defines read operations and bounded child-existence
// probes for legal cases
type CaseRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.LegalCase, error)
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.LegalCase, int64, error)
	HasTasks(caseID uuid.UUID) (bool, error)
	HasDocuments(caseID uuid.UUID) (bool, error)
}

// TaskRepositoryInterface defines read operations for case tasks
type TaskRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Task, error)
	ListByCase(caseID uuid.UUID, limit, offset int) ([]models.Task, int64, error)
}

// DocumentRepositoryInterface defines read operations for case documents
type DocumentRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.CaseDocument, error)
	ListByCase(caseID uuid.UUID, limit, offset int) ([]models.CaseDocument, int64, error)
}

// AuditRepositoryInterface defines read operations for the audit log.
// Entries are append-only and written exclusively through batches.
type AuditRepositoryInterface interface {
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.AuditLogEntry, int64, error)
	ListByEntity(orgID uuid.UUID, entityType, entityID string) ([]models.AuditLogEntry, error)
}
