package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership is a user's role- and scope-bound relationship to one
// organization. The (organization, user) pair is the composite key; removal
// deletes the row rather than storing a "removed" status.
type Membership struct {
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;primaryKey" validate:"required"`
	UserID         uuid.UUID        `json:"user_id" gorm:"type:uuid;primaryKey" validate:"required"`
	Role           MembershipRole   `json:"role" gorm:"type:varchar(20);not null;default:'read_only'" validate:"required"`
	Status         MembershipStatus `json:"status" gorm:"type:varchar(20);not null;default:'invited'"`
	PropertyScopes UUIDSet          `json:"property_scopes" gorm:"type:jsonb"` // empty = unrestricted
	CaseScopes     UUIDSet          `json:"case_scopes" gorm:"type:jsonb"`     // empty = unrestricted; admin/legal bypass
	InvitedBy      uuid.UUID        `json:"invited_by" gorm:"type:uuid"`
	InvitedAt      time.Time        `json:"invited_at"`
	JoinedAt       *time.Time       `json:"joined_at,omitempty"` // set once, on first transition to active
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}

// IsActive reports whether the membership grants access
func (m *Membership) IsActive() bool {
	return m.Status == MembershipStatusActive
}

// PropertyInScope reports whether the membership may act on the given
// property. An empty scope set means unrestricted; admins always bypass.
func (m *Membership) PropertyInScope(propertyID uuid.UUID) bool {
	if m.Role == MembershipRoleAdmin {
		return true
	}
	if len(m.PropertyScopes) == 0 {
		return true
	}
	return m.PropertyScopes.Contains(propertyID)
}

// CaseInScope reports whether the membership may act on the given case.
// Admin and legal roles bypass case scoping entirely.
func (m *Membership) CaseInScope(caseID uuid.UUID) bool {
	if m.Role == MembershipRoleAdmin || m.Role == MembershipRoleLegal {
		return true
	}
	if len(m.CaseScopes) == 0 {
		return true
	}
	return m.CaseScopes.Contains(caseID)
}
