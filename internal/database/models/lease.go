package models

import (
	"time"

	"github.com/google/uuid"
)

// Lease binds one or more tenants to a unit. TenantIDs is the forward side of
// the denormalized tenant-lease relation; a lease whose status is not ended
// or terminated must appear in every referenced tenant's LeaseIDs.
type Lease struct {
	BaseModel
	OrganizationID uuid.UUID   `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	PropertyID     uuid.UUID   `json:"property_id" gorm:"type:uuid;not null;index" validate:"required"`
	UnitID         uuid.UUID   `json:"unit_id" gorm:"type:uuid;not null;index" validate:"required"`
	TenantIDs      UUIDList    `json:"tenant_ids" gorm:"type:jsonb" validate:"required,min=1"`
	Status         LeaseStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	StartDate      time.Time   `json:"start_date"`
	EndDate        *time.Time  `json:"end_date,omitempty"`
	MonthlyRent    float64     `json:"monthly_rent" validate:"gte=0"`
	DepositAmount  float64     `json:"deposit_amount" validate:"gte=0"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Unit         Unit         `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
}

// TableName returns the table name for Lease
func (Lease) TableName() string {
	return "leases"
}
