package models

import (
	"github.com/google/uuid"
)

// Property represents a building or parcel owned by an organization
type Property struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	AddressLine1   string    `json:"address_line1" gorm:"not null;size:200" validate:"required,max=200"`
	AddressLine2   string    `json:"address_line2" gorm:"size:200"`
	City           string    `json:"city" gorm:"not null;size:100" validate:"required,max=100"`
	State          string    `json:"state" gorm:"size:50"`
	PostalCode     string    `json:"postal_code" gorm:"size:20"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Units        []Unit       `json:"units,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "properties"
}

// Unit represents a rentable unit within a property. Occupied units may not
// be deleted.
type Unit struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	PropertyID     uuid.UUID  `json:"property_id" gorm:"type:uuid;not null;index" validate:"required"`
	Label          string     `json:"label" gorm:"not null;size:50" validate:"required,max=50"`
	Status         UnitStatus `json:"status" gorm:"type:varchar(20);not null;default:'vacant'"`
	Bedrooms       int        `json:"bedrooms"`
	Bathrooms      float64    `json:"bathrooms"`
	SquareFeet     int        `json:"square_feet"`

	// Relationships
	Property Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Unit
func (Unit) TableName() string {
	return "units"
}
