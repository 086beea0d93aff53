package testutils

import (
	"time"

	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Properties LLC",
		TaxRefSuffix: "4821",
		Settings: models.OrganizationSettings{
			Timezone:      "America/New_York",
			Currency:      "USD",
			LateFeeFlat:   50,
			LateFeePct:    0,
			LateFeeGraceD: 5,
		},
		Status: models.OrganizationStatusActive,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// Archived creates an archived organization
func (f *OrganizationFactory) Archived() *models.Organization {
	org := f.Create()
	org.Status = models.OrganizationStatusArchived
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Derive a unique email from the UUID to avoid unique-index conflicts
	email := "user-" + id.String()[:8] + "@test.com"

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:       email,
		DisplayName: "Jane Renter",
		PhoneNumber: "+1-555-0123",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates an active admin membership with default values
func (f *MembershipFactory) Create(orgID, userID uuid.UUID) *models.Membership {
	now := time.Now()
	return &models.Membership{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           models.MembershipRoleAdmin,
		Status:         models.MembershipStatusActive,
		InvitedBy:      userID,
		InvitedAt:      now,
		JoinedAt:       &now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WithRole sets a custom role for the membership
func (f *MembershipFactory) WithRole(orgID, userID uuid.UUID, role models.MembershipRole) *models.Membership {
	m := f.Create(orgID, userID)
	m.Role = role
	return m
}

// Invited creates a pending invitation that has not been accepted yet
func (f *MembershipFactory) Invited(orgID, userID, invitedBy uuid.UUID, role models.MembershipRole) *models.Membership {
	m := f.Create(orgID, userID)
	m.Role = role
	m.Status = models.MembershipStatusInvited
	m.InvitedBy = invitedBy
	m.JoinedAt = nil
	return m
}

// WithPropertyScopes restricts the membership to the given properties
func (f *MembershipFactory) WithPropertyScopes(orgID, userID uuid.UUID, role models.MembershipRole, propertyIDs ...uuid.UUID) *models.Membership {
	m := f.WithRole(orgID, userID, role)
	m.PropertyScopes = models.UUIDSet(propertyIDs)
	return m
}

// PropertyFactory provides methods to create test Property data
type PropertyFactory struct{}

// NewPropertyFactory creates a new PropertyFactory
func NewPropertyFactory() *PropertyFactory {
	return &PropertyFactory{}
}

// Create creates a test Property with default values
func (f *PropertyFactory) Create(orgID uuid.UUID) *models.Property {
	return &models.Property{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           "Maple Court",
		AddressLine1:   "100 Maple St",
		City:           "Springfield",
		State:          "IL",
		PostalCode:     "62701",
	}
}

// WithName sets a custom name for the property
func (f *PropertyFactory) WithName(orgID uuid.UUID, name string) *models.Property {
	p := f.Create(orgID)
	p.Name = name
	return p
}

// UnitFactory provides methods to create test Unit data
type UnitFactory struct{}

// NewUnitFactory creates a new UnitFactory
func NewUnitFactory() *UnitFactory {
	return &UnitFactory{}
}

// Create creates a vacant test Unit with default values
func (f *UnitFactory) Create(orgID, propertyID uuid.UUID) *models.Unit {
	return &models.Unit{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		PropertyID:     propertyID,
		Label:          "1A",
		Status:         models.UnitStatusVacant,
		Bedrooms:       2,
		Bathrooms:      1,
		SquareFeet:     850,
	}
}

// WithStatus sets a custom occupancy status for the unit
func (f *UnitFactory) WithStatus(orgID, propertyID uuid.UUID, status models.UnitStatus) *models.Unit {
	u := f.Create(orgID, propertyID)
	u.Status = status
	return u
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a residential test Tenant with default values
func (f *TenantFactory) Create(orgID uuid.UUID) *models.Tenant {
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Profile: models.TenantProfile{
			Kind: models.TenantKindResidential,
			Residential: &models.ResidentialProfile{
				FirstName:   "Alex",
				LastName:    "Morgan",
				Email:       "alex.morgan@test.com",
				PhoneNumber: "+1-555-0456",
			},
		},
	}
}

// Commercial creates a commercial test Tenant
func (f *TenantFactory) Commercial(orgID uuid.UUID) *models.Tenant {
	t := f.Create(orgID)
	t.Profile = models.TenantProfile{
		Kind: models.TenantKindCommercial,
		Commercial: &models.CommercialProfile{
			LegalName:    "Corner Bakery LLC",
			TradeName:    "Corner Bakery",
			ContactName:  "Sam Lee",
			ContactEmail: "sam@cornerbakery.test",
		},
	}
	return t
}

// WithLeases creates a tenant that already carries lease back-references
func (f *TenantFactory) WithLeases(orgID uuid.UUID, leaseIDs ...uuid.UUID) *models.Tenant {
	t := f.Create(orgID)
	t.LeaseIDs = models.UUIDSet(leaseIDs)
	return t
}

// LeaseFactory provides methods to create test Lease data
type LeaseFactory struct{}

// NewLeaseFactory creates a new LeaseFactory
func NewLeaseFactory() *LeaseFactory {
	return &LeaseFactory{}
}

// Create creates a draft test Lease with default values
func (f *LeaseFactory) Create(orgID, propertyID, unitID uuid.UUID, tenantIDs ...uuid.UUID) *models.Lease {
	return &models.Lease{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		PropertyID:     propertyID,
		UnitID:         unitID,
		TenantIDs:      models.UUIDList(tenantIDs),
		Status:         models.LeaseStatusDraft,
		StartDate:      time.Now(),
		MonthlyRent:    1500,
		DepositAmount:  1500,
	}
}

// WithStatus sets a custom lifecycle status for the lease
func (f *LeaseFactory) WithStatus(orgID, propertyID, unitID uuid.UUID, status models.LeaseStatus, tenantIDs ...uuid.UUID) *models.Lease {
	l := f.Create(orgID, propertyID, unitID, tenantIDs...)
	l.Status = status
	return l
}

// LegalCaseFactory provides methods to create test LegalCase data
type LegalCaseFactory struct{}

// NewLegalCaseFactory creates a new LegalCaseFactory
func NewLegalCaseFactory() *LegalCaseFactory {
	return &LegalCaseFactory{}
}

// Create creates an open test LegalCase with default values
func (f *LegalCaseFactory) Create(orgID uuid.UUID) *models.LegalCase {
	return &models.LegalCase{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Title:          "Unpaid rent recovery",
		Status:         models.CaseStatusOpen,
		Plaintiff: models.CaseParty{
			Kind: models.PartyKindLLC,
			LLC:  &models.LLCParty{LegalName: "Test Properties LLC"},
		},
		OpposingParty: models.CaseParty{
			Kind:       models.PartyKindIndividual,
			Individual: &models.IndividualParty{FullName: "Pat Doe"},
		},
	}
}

// WithTenantParty creates a case whose opposing party references a tenant
func (f *LegalCaseFactory) WithTenantParty(orgID, tenantID uuid.UUID) *models.LegalCase {
	c := f.Create(orgID)
	c.OpposingParty = models.CaseParty{
		Kind:   models.PartyKindTenant,
		Tenant: &models.TenantParty{TenantID: tenantID},
	}
	return c
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create(orgID, caseID uuid.UUID) *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		CaseID:         caseID,
		Title:          "File eviction notice",
		Done:           false,
	}
}

// DocumentFactory provides methods to create test CaseDocument data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test CaseDocument with default values
func (f *DocumentFactory) Create(orgID, caseID uuid.UUID) *models.CaseDocument {
	id := uuid.New()
	return &models.CaseDocument{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		CaseID:         caseID,
		FileName:       "notice.pdf",
		ContentType:    "application/pdf",
		StorageKey:     "cases/" + caseID.String() + "/" + id.String() + ".pdf",
		SizeBytes:      20480,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Membership   *MembershipFactory
	Property     *PropertyFactory
	Unit         *UnitFactory
	Tenant       *TenantFactory
	Lease        *LeaseFactory
	LegalCase    *LegalCaseFactory
	Task         *TaskFactory
	Document     *DocumentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		Membership:   NewMembershipFactory(),
		Property:     NewPropertyFactory(),
		Unit:         NewUnitFactory(),
		Tenant:       NewTenantFactory(),
		Lease:        NewLeaseFactory(),
		LegalCase:    NewLegalCaseFactory(),
		Task:         NewTaskFactory(),
		Document:     NewDocumentFactory(),
	}
}

// CreateLeasedHousehold creates an organization with a property, a vacant
// unit, a tenant, and a draft lease binding them, without persisting anything.
func (fs *FactorySet) CreateLeasedHousehold() (*models.Organization, *models.Property, *models.Unit, *models.Tenant, *models.Lease) {
	org := fs.Organization.Create()
	property := fs.Property.Create(org.ID)
	unit := fs.Unit.Create(org.ID, property.ID)
	tenant := fs.Tenant.Create(org.ID)
	lease := fs.Lease.Create(org.ID, property.ID, unit.ID, tenant.ID)
	return org, property, unit, tenant, lease
}
