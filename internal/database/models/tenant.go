package models

import (
	"fmt"

	"github.com/google/uuid"
)

// TenantKind discriminates the shape of a tenant profile
type TenantKind string

const (
	TenantKindResidential TenantKind = "residential"
	TenantKindCommercial  TenantKind = "commercial"
)

// ResidentialProfile is the profile shape for an individual renter
type ResidentialProfile struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number"`
}

// CommercialProfile is the profile shape for a business renter
type CommercialProfile struct {
	LegalName    string `json:"legal_name" validate:"required,max=200"`
	TradeName    string `json:"trade_name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

// TenantProfile is a tagged union: exactly one variant must be populated and
// it must match Kind.
type TenantProfile struct {
	Kind        TenantKind          `json:"kind"`
	Residential *ResidentialProfile `json:"residential,omitempty"`
	Commercial  *CommercialProfile  `json:"commercial,omitempty"`
}

// Validate enforces the exactly-one-shape-per-tag contract
func (p *TenantProfile) Validate() error {
	switch p.Kind {
	case TenantKindResidential:
		if p.Residential == nil || p.Commercial != nil {
			return fmt.Errorf("residential tenant must have exactly the residential profile set")
		}
		return nil
	case TenantKindCommercial:
		if p.Commercial == nil || p.Residential != nil {
			return fmt.Errorf("commercial tenant must have exactly the commercial profile set")
		}
		return nil
	default:
		return fmt.Errorf("unknown tenant kind %q", p.Kind)
	}
}

// DisplayName returns the human-readable name for either profile shape
func (p *TenantProfile) DisplayName() string {
	switch p.Kind {
	case TenantKindResidential:
		if p.Residential != nil {
			return p.Residential.FirstName + " " + p.Residential.LastName
		}
	case TenantKindCommercial:
		if p.Commercial != nil {
			return p.Commercial.LegalName
		}
	}
	return ""
}

// Tenant represents a renter in an organization. LeaseIDs is the denormalized
// back-reference side of the tenant-lease relation and is maintained only by
// the integrity guard, never written directly by entity services.
type Tenant struct {
	BaseModel
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Profile        TenantProfile `json:"profile" gorm:"type:jsonb;serializer:json"`
	LeaseIDs       UUIDSet       `json:"lease_ids" gorm:"type:jsonb"`
	UserID         *uuid.UUID    `json:"user_id,omitempty" gorm:"type:uuid;index"` // portal identity for tenant-role memberships

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
