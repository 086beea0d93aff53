package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PartyKind discriminates the shape of a case party
type PartyKind string

const (
	PartyKindIndividual PartyKind = "individual"
	PartyKindLLC        PartyKind = "llc"
	PartyKindTenant     PartyKind = "tenant"
)

// IndividualParty is a natural person named on a case
type IndividualParty struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// LLCParty is a company named on a case
type LLCParty struct {
	LegalName       string `json:"legal_name" validate:"required,max=200"`
	RegisteredAgent string `json:"registered_agent"`
}

// TenantParty references a tenant record as the opposing party
type TenantParty struct {
	TenantID uuid.UUID `json:"tenant_id" validate:"required"`
}

// CaseParty is a tagged union: exactly one variant must be populated and it
// must match Kind.
type CaseParty struct {
	Kind       PartyKind        `json:"kind"`
	Individual *IndividualParty `json:"individual,omitempty"`
	LLC        *LLCParty        `json:"llc,omitempty"`
	Tenant     *TenantParty     `json:"tenant,omitempty"`
}

// Validate enforces the exactly-one-shape-per-tag contract
func (p *CaseParty) Validate() error {
	set := 0
	if p.Individual != nil {
		set++
	}
	if p.LLC != nil {
		set++
	}
	if p.Tenant != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("case party must have exactly one shape set, got %d", set)
	}
	switch p.Kind {
	case PartyKindIndividual:
		if p.Individual == nil {
			return fmt.Errorf("individual party missing individual shape")
		}
	case PartyKindLLC:
		if p.LLC == nil {
			return fmt.Errorf("llc party missing llc shape")
		}
	case PartyKindTenant:
		if p.Tenant == nil {
			return fmt.Errorf("tenant party missing tenant shape")
		}
	default:
		return fmt.Errorf("unknown party kind %q", p.Kind)
	}
	return nil
}

// LegalCase represents a legal matter owned by an organization. A case may
// not be deleted while it still owns tasks or documents.
type LegalCase struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	PropertyID     *uuid.UUID `json:"property_id,omitempty" gorm:"type:uuid;index"`
	Title          string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Status         CaseStatus `json:"status" gorm:"type:varchar(20);not null;default:'open'"`
	Plaintiff      CaseParty  `json:"plaintiff" gorm:"type:jsonb;serializer:json"`
	OpposingParty  CaseParty  `json:"opposing_party" gorm:"type:jsonb;serializer:json"`
	FiledAt        *time.Time `json:"filed_at,omitempty"`
	CourtReference string     `json:"court_reference" gorm:"size:100"`

	// Relationships
	Organization Organization   `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Tasks        []Task         `json:"tasks,omitempty" gorm:"foreignKey:CaseID"`
	Documents    []CaseDocument `json:"documents,omitempty" gorm:"foreignKey:CaseID"`
}

// TableName returns the table name for LegalCase
func (LegalCase) TableName() string {
	return "legal_cases"
}

// Task is a work item owned by a legal case
type Task struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	CaseID         uuid.UUID  `json:"case_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title          string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Done           bool       `json:"done" gorm:"default:false"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	AssigneeUserID *uuid.UUID `json:"assignee_user_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// CaseDocument is a document record owned by a legal case. Storage and
// signed-URL handling live outside this service; only the reference is kept.
type CaseDocument struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	CaseID         uuid.UUID `json:"case_id" gorm:"type:uuid;not null;index" validate:"required"`
	FileName       string    `json:"file_name" gorm:"not null;size:255" validate:"required,max=255"`
	ContentType    string    `json:"content_type" gorm:"size:100"`
	StorageKey     string    `json:"storage_key" gorm:"not null;size:500"`
	SizeBytes      int64     `json:"size_bytes"`
}

// TableName returns the table name for CaseDocument
func (CaseDocument) TableName() string {
	return "case_documents"
}
