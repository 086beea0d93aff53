package service

import (
	"errors"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScopeKind identifies which scope set of a membership a resource is checked
// against
type ScopeKind string

const (
	ScopeProperty ScopeKind = "property"
	ScopeCase     ScopeKind = "case"
)

// Scope is an optional resource restriction passed to Authorize
type Scope struct {
	Kind ScopeKind
	ID   uuid.UUID
}

// PropertyScope builds a property scope for Authorize
func PropertyScope(id uuid.UUID) Scope {
	return Scope{Kind: ScopeProperty, ID: id}
}

// CaseScope builds a case scope for Authorize
func CaseScope(id uuid.UUID) Scope {
	return Scope{Kind: ScopeCase, ID: id}
}

// Authorizer is the role policy evaluator: a pure read that decides whether
// an actor may act on an organization's resources. It has no side effects
// and costs a single point lookup, so callers may invoke it freely.
type Authorizer struct {
	memberships repository.MembershipRepositoryInterface
}

// NewAuthorizer creates a new authorizer
func NewAuthorizer(memberships repository.MembershipRepositoryInterface) *Authorizer {
	return &Authorizer{memberships: memberships}
}

// Authorize looks up the actor's membership and checks status, role and
// scope in that order. On success it returns the membership so callers can
// layer further per-entity decisions on the role and scopes.
func (a *Authorizer) Authorize(actorID, orgID uuid.UUID, roles []models.MembershipRole, scopes ...Scope) (*models.Membership, error) {
	membership, err := a.memberships.Get(orgID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotAMember
		}
		return nil, err
	}

	// Invited and disabled are denied uniformly: an invited member has no
	// access until they accept.
	if !membership.IsActive() {
		return nil, apperrors.ErrMembershipNotActive
	}

	permitted := false
	for _, role := range roles {
		if membership.Role == role {
			permitted = true
			break
		}
	}
	if !permitted {
		return nil, apperrors.ErrRoleNotPermitted
	}

	for _, scope := range scopes {
		switch scope.Kind {
		case ScopeProperty:
			if !membership.PropertyInScope(scope.ID) {
				return nil, apperrors.ErrOutOfScope
			}
		case ScopeCase:
			if !membership.CaseInScope(scope.ID) {
				return nil, apperrors.ErrOutOfScope
			}
		}
	}

	return membership, nil
}

// AllRoles returns every membership role, for operations any active member
// may perform
func AllRoles() []models.MembershipRole {
	return []models.MembershipRole{
		models.MembershipRoleAdmin,
		models.MembershipRoleManager,
		models.MembershipRoleAccounting,
		models.MembershipRoleMaintenance,
		models.MembershipRoleLegal,
		models.MembershipRoleTenant,
		models.MembershipRoleReadOnly,
	}
}

// Role sets used by the entity services
var (
	adminOnly = []models.MembershipRole{models.MembershipRoleAdmin}

	propertyWriteRoles = []models.MembershipRole{
		models.MembershipRoleAdmin,
		models.MembershipRoleManager,
	}

	unitStatusRoles = []models.MembershipRole{
		models.MembershipRoleAdmin,
		models.MembershipRoleManager,
		models.MembershipRoleMaintenance,
	}

	leaseWriteRoles = []models.MembershipRole{
		models.MembershipRoleAdmin,
		models.MembershipRoleManager,
	}

	caseWriteRoles = []models.MembershipRole{
		models.MembershipRoleAdmin,
		models.MembershipRoleLegal,
	}

	caseReadRoles = []models.MembershipRole{
		models.MembershipRoleAdmin,
		models.MembershipRoleLegal,
		models.MembershipRoleManager,
		models.MembershipRoleReadOnly,
	}

	auditReadRoles = []models.MembershipRole{
		models.MembershipRoleAdmin,
		models.MembershipRoleAccounting,
	}
)
