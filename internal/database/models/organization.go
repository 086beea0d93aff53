package models

// OrganizationSettings holds per-organization billing and locale settings,
// stored as a jsonb column
type OrganizationSettings struct {
	Timezone      string  `json:"timezone"`
	Currency      string  `json:"currency"`
	LateFeeFlat   float64 `json:"late_fee_flat"`
	LateFeePct    float64 `json:"late_fee_pct"`
	LateFeeGraceD int     `json:"late_fee_grace_days"`
}

// Organization represents the root entity for multi-tenancy (an "LLC").
// Organizations are archived, never hard-deleted.
type Organization struct {
	BaseModel
	Name         string               `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	TaxRefSuffix string               `json:"tax_ref_suffix" gorm:"size:4" validate:"omitempty,len=4,numeric"` // last 4 digits only, never the full reference
	Settings     OrganizationSettings `json:"settings" gorm:"type:jsonb;serializer:json"`
	Status       OrganizationStatus   `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Properties  []Property   `json:"properties,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
