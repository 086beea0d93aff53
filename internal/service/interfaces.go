package service

import (
	"context"

	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(ctx context.Context, creatorUserID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(actorID, orgID uuid.UUID) (*OrganizationResponse, error)
	ListForUser(userID uuid.UUID) ([]OrganizationResponse, error)
	Update(ctx context.Context, actorID, orgID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Archive(ctx context.Context, actorID, orgID uuid.UUID) (*OrganizationResponse, error)
	Restore(ctx context.Context, actorID, orgID uuid.UUID) (*OrganizationResponse, error)
}

// MembershipServiceInterface defines the interface for membership service
type MembershipServiceInterface interface {
	Invite(ctx context.Context, actorID, orgID uuid.UUID, req *InviteMemberRequest) (*MembershipResponse, error)
	Accept(ctx context.Context, actorID, orgID uuid.UUID) (*MembershipResponse, error)
	Decline(ctx context.Context, actorID, orgID uuid.UUID) error
	Update(ctx context.Context, actorID, orgID, targetUserID uuid.UUID, req *UpdateMembershipRequest) (*MembershipResponse, error)
	Remove(ctx context.Context, actorID, orgID, targetUserID uuid.UUID) error
	List(actorID, orgID uuid.UUID, limit, offset int) ([]MembershipResponse, int64, error)
}

// PropertyServiceInterface defines the interface for property and unit service
type PropertyServiceInterface interface {
	CreateProperty(ctx context.Context, actorID uuid.UUID, req *CreatePropertyRequest) (*PropertyResponse, error)
	GetProperty(actorID, propertyID uuid.UUID) (*PropertyResponse, error)
	ListProperties(actorID, orgID uuid.UUID, limit, offset int) ([]PropertyResponse, int64, error)
	UpdateProperty(ctx context.Context, actorID, propertyID uuid.UUID, req *UpdatePropertyRequest) (*PropertyResponse, error)
	DeleteProperty(ctx context.Context, actorID, propertyID uuid.UUID) error
	CreateUnit(ctx context.Context, actorID uuid.UUID, req *CreateUnitRequest) (*UnitResponse, error)
	UpdateUnitStatus(ctx context.Context, actorID, unitID uuid.UUID, status models.UnitStatus) (*UnitResponse, error)
	DeleteUnit(ctx context.Context, actorID, unitID uuid.UUID) error
	ListUnits(actorID, propertyID uuid.UUID, limit, offset int) ([]UnitResponse, int64, error)
}

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, req *CreateTenantRequest) (*TenantResponse, error)
	Update(ctx context.Context, actorID, tenantID uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error)
	Delete(ctx context.Context, actorID, tenantID uuid.UUID) error
	GetByID(actorID, tenantID uuid.UUID) (*TenantResponse, error)
	ListByOrganization(actorID, orgID uuid.UUID, limit, offset int) ([]TenantResponse, int64, error)
}

// LeaseServiceInterface defines the interface for lease service
type LeaseServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, req *CreateLeaseRequest) (*LeaseResponse, error)
	UpdateStatus(ctx context.Context, actorID, leaseID uuid.UUID, newStatus models.LeaseStatus) (*LeaseResponse, error)
	Delete(ctx context.Context, actorID, leaseID uuid.UUID) error
	GetByID(actorID, leaseID uuid.UUID) (*LeaseResponse, error)
	ListByOrganization(actorID, orgID uuid.UUID, limit, offset int) ([]LeaseResponse, int64, error)
}

// CaseServiceInterface defines the interface for legal case service
type CaseServiceInterface interface {
	CreateCase(ctx context.Context, actorID uuid.UUID, req *CreateCaseRequest) (*CaseResponse, error)
	UpdateCaseStatus(ctx context.Context, actorID, caseID uuid.UUID, status models.CaseStatus) (*CaseResponse, error)
	DeleteCase(ctx context.Context, actorID, caseID uuid.UUID) error
	GetCase(actorID, caseID uuid.UUID) (*CaseResponse, error)
	ListCases(actorID, orgID uuid.UUID, limit, offset int) ([]CaseResponse, int64, error)
	CreateTask(ctx context.Context, actorID, caseID uuid.UUID, req *CreateTaskRequest) (*TaskResponse, error)
	SetTaskDone(ctx context.Context, actorID, taskID uuid.UUID, done bool) (*TaskResponse, error)
	DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error
	ListTasks(actorID, caseID uuid.UUID, limit, offset int) ([]TaskResponse, int64, error)
	AttachDocument(ctx context.Context, actorID, caseID uuid.UUID, req *AttachDocumentRequest) (*DocumentResponse, error)
	DetachDocument(ctx context.Context, actorID, documentID uuid.UUID) error
	ListDocuments(actorID, caseID uuid.UUID, limit, offset int) ([]DocumentResponse, int64, error)
}

// AuditServiceInterface defines the interface for audit trail queries
type AuditServiceInterface interface {
	ListByOrganization(actorID, orgID uuid.UUID, limit, offset int) ([]AuditEntryResponse, int64, error)
	ListByEntity(actorID, orgID uuid.UUID, entityType, entityID string) ([]AuditEntryResponse, error)
}
