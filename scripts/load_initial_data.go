package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"property-portal-backend/internal/config"
	"property-portal-backend/internal/database"
	"property-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name          string  `yaml:"name"`
	TaxRefSuffix  string  `yaml:"tax_ref_suffix,omitempty"`
	Timezone      string  `yaml:"timezone,omitempty"`
	Currency      string  `yaml:"currency,omitempty"`
	LateFeeFlat   float64 `yaml:"late_fee_flat,omitempty"`
	LateFeeGraceD int     `yaml:"late_fee_grace_days,omitempty"`
}

type UserData struct {
	Email       string `yaml:"email"`
	DisplayName string `yaml:"display_name"`
	PhoneNumber string `yaml:"phone_number,omitempty"`
}

type MembershipData struct {
	OrganizationName string   `yaml:"organization_name"`
	UserEmail        string   `yaml:"user_email"`
	Role             string   `yaml:"role"`
	Status           string   `yaml:"status,omitempty"`
	PropertyNames    []string `yaml:"property_names,omitempty"`
}

type PropertyData struct {
	Name             string `yaml:"name"`
	OrganizationName string `yaml:"organization_name"`
	AddressLine1     string `yaml:"address_line1"`
	AddressLine2     string `yaml:"address_line2,omitempty"`
	City             string `yaml:"city"`
	State            string `yaml:"state,omitempty"`
	PostalCode       string `yaml:"postal_code,omitempty"`
}

type UnitData struct {
	Label        string  `yaml:"label"`
	PropertyName string  `yaml:"property_name"`
	Status       string  `yaml:"status,omitempty"`
	Bedrooms     int     `yaml:"bedrooms,omitempty"`
	Bathrooms    float64 `yaml:"bathrooms,omitempty"`
	SquareFeet   int     `yaml:"square_feet,omitempty"`
}

type TenantData struct {
	OrganizationName string `yaml:"organization_name"`
	Kind             string `yaml:"kind"`
	FirstName        string `yaml:"first_name,omitempty"`
	LastName         string `yaml:"last_name,omitempty"`
	Email            string `yaml:"email,omitempty"`
	PhoneNumber      string `yaml:"phone_number,omitempty"`
	LegalName        string `yaml:"legal_name,omitempty"`
	TradeName        string `yaml:"trade_name,omitempty"`
	ContactName      string `yaml:"contact_name,omitempty"`
	ContactEmail     string `yaml:"contact_email,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type MembershipsFile struct {
	Memberships []MembershipData `yaml:"memberships"`
}

type PropertiesFile struct {
	Properties []PropertyData `yaml:"properties"`
}

type UnitsFile struct {
	Units []UnitData `yaml:"units"`
}

type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	properties, err := loadProperties(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load properties: %w", err)
	}

	units, err := loadUnits(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load units: %w", err)
	}

	memberships, err := loadMemberships(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load memberships: %w", err)
	}

	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create users
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create properties
	propertyMap := make(map[string]*models.Property)
	propertyCreated := 0
	for _, propertyData := range properties {
		property, created, err := createProperty(db, propertyData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create property %s: %w", propertyData.Name, err)
		}
		propertyMap[propertyData.Name] = property
		if created {
			propertyCreated++
		}
	}
	log.Printf("Properties: %d created, %d total", propertyCreated, len(properties))

	// Create units
	unitCreated := 0
	for _, unitData := range units {
		_, created, err := createUnit(db, unitData, propertyMap)
		if err != nil {
			log.Printf("Warning: failed to create unit %s: %v", unitData.Label, err)
			continue
		}
		if created {
			unitCreated++
		}
	}
	log.Printf("Units: %d created, %d total", unitCreated, len(units))

	// Create memberships (after users and properties so scopes resolve)
	membershipCreated := 0
	for _, membershipData := range memberships {
		_, created, err := createMembership(db, membershipData, orgMap, userMap, propertyMap)
		if err != nil {
			return fmt.Errorf("failed to create membership for %s: %w", membershipData.UserEmail, err)
		}
		if created {
			membershipCreated++
		}
	}
	log.Printf("Memberships: %d created, %d total", membershipCreated, len(memberships))

	// Create tenants
	tenantCreated := 0
	for _, tenantData := range tenants {
		_, created, err := createTenant(db, tenantData, orgMap)
		if err != nil {
			log.Printf("Warning: failed to create tenant: %v", err)
			continue
		}
		if created {
			tenantCreated++
		}
	}
	log.Printf("Tenants: %d created, %d total", tenantCreated, len(tenants))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := walkYAMLFiles(dataDir, "organizations", func(data []byte) error {
		var file OrganizationsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allOrgs = append(allOrgs, file.Organizations...)
		return nil
	})

	return allOrgs, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := walkYAMLFiles(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allUsers = append(allUsers, file.Users...)
		return nil
	})

	return allUsers, err
}

func loadMemberships(dataDir string) ([]MembershipData, error) {
	var allMemberships []MembershipData

	err := walkYAMLFiles(dataDir, "memberships", func(data []byte) error {
		var file MembershipsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allMemberships = append(allMemberships, file.Memberships...)
		return nil
	})

	return allMemberships, err
}

func loadProperties(dataDir string) ([]PropertyData, error) {
	var allProperties []PropertyData

	err := walkYAMLFiles(dataDir, "properties", func(data []byte) error {
		var file PropertiesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allProperties = append(allProperties, file.Properties...)
		return nil
	})

	return allProperties, err
}

func loadUnits(dataDir string) ([]UnitData, error) {
	var allUnits []UnitData

	err := walkYAMLFiles(dataDir, "units", func(data []byte) error {
		var file UnitsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allUnits = append(allUnits, file.Units...)
		return nil
	})

	return allUnits, err
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var allTenants []TenantData

	err := walkYAMLFiles(dataDir, "tenants", func(data []byte) error {
		var file TenantsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allTenants = append(allTenants, file.Tenants...)
		return nil
	})

	return allTenants, err
}

// walkYAMLFiles feeds every .yaml file whose path contains the marker to fn
func walkYAMLFiles(dataDir, marker string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, marker) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return fn(data)
		}
		return nil
	})
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name:         orgData.Name,
				TaxRefSuffix: orgData.TaxRefSuffix,
				Status:       models.OrganizationStatusActive,
				Settings: models.OrganizationSettings{
					Timezone:      orgData.Timezone,
					Currency:      orgData.Currency,
					LateFeeFlat:   orgData.LateFeeFlat,
					LateFeeGraceD: orgData.LateFeeGraceD,
				},
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return &org, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				Email:       userData.Email,
				DisplayName: userData.DisplayName,
				PhoneNumber: userData.PhoneNumber,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil
}

func createProperty(db *gorm.DB, propertyData PropertyData, orgMap map[string]*models.Organization) (*models.Property, bool, error) {
	org := orgMap[propertyData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for property %s", propertyData.OrganizationName, propertyData.Name)
	}

	var property models.Property
	if err := db.Where("name = ? AND organization_id = ?", propertyData.Name, org.ID).First(&property).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			property = models.Property{
				OrganizationID: org.ID,
				Name:           propertyData.Name,
				AddressLine1:   propertyData.AddressLine1,
				AddressLine2:   propertyData.AddressLine2,
				City:           propertyData.City,
				State:          propertyData.State,
				PostalCode:     propertyData.PostalCode,
			}

			if err := db.Create(&property).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create property: %w", err)
			}
			return &property, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query property: %w", err)
		}
	}

	return &property, false, nil
}

func createUnit(db *gorm.DB, unitData UnitData, propertyMap map[string]*models.Property) (*models.Unit, bool, error) {
	property := propertyMap[unitData.PropertyName]
	if property == nil {
		return nil, false, fmt.Errorf("property %s not found for unit %s", unitData.PropertyName, unitData.Label)
	}

	status := models.UnitStatus(unitData.Status)
	if unitData.Status == "" {
		status = models.UnitStatusVacant
	}
	if !status.IsValid() {
		return nil, false, fmt.Errorf("invalid unit status %q", unitData.Status)
	}

	var unit models.Unit
	if err := db.Where("label = ? AND property_id = ?", unitData.Label, property.ID).First(&unit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			unit = models.Unit{
				OrganizationID: property.OrganizationID,
				PropertyID:     property.ID,
				Label:          unitData.Label,
				Status:         status,
				Bedrooms:       unitData.Bedrooms,
				Bathrooms:      unitData.Bathrooms,
				SquareFeet:     unitData.SquareFeet,
			}

			if err := db.Create(&unit).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create unit: %w", err)
			}
			return &unit, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query unit: %w", err)
		}
	}

	return &unit, false, nil
}

func createMembership(db *gorm.DB, membershipData MembershipData, orgMap map[string]*models.Organization, userMap map[string]*models.User, propertyMap map[string]*models.Property) (*models.Membership, bool, error) {
	org := orgMap[membershipData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for membership", membershipData.OrganizationName)
	}
	user := userMap[membershipData.UserEmail]
	if user == nil {
		return nil, false, fmt.Errorf("user %s not found for membership", membershipData.UserEmail)
	}

	role := models.MembershipRole(membershipData.Role)
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q for membership", membershipData.Role)
	}

	status := models.MembershipStatus(membershipData.Status)
	if membershipData.Status == "" {
		status = models.MembershipStatusActive
	}
	if !status.IsValid() {
		return nil, false, fmt.Errorf("invalid status %q for membership", membershipData.Status)
	}

	var scopes models.UUIDSet
	for _, name := range membershipData.PropertyNames {
		property := propertyMap[name]
		if property == nil {
			return nil, false, fmt.Errorf("property %s not found for membership scope", name)
		}
		scopes = scopes.Add(property.ID)
	}

	var membership models.Membership
	if err := db.Where("organization_id = ? AND user_id = ?", org.ID, user.ID).First(&membership).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			now := time.Now()
			membership = models.Membership{
				OrganizationID: org.ID,
				UserID:         user.ID,
				Role:           role,
				Status:         status,
				PropertyScopes: scopes,
				InvitedBy:      user.ID,
				InvitedAt:      now,
			}
			if status == models.MembershipStatusActive {
				membership.JoinedAt = &now
			}

			if err := db.Create(&membership).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create membership: %w", err)
			}
			return &membership, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query membership: %w", err)
		}
	}

	return &membership, false, nil
}

func createTenant(db *gorm.DB, tenantData TenantData, orgMap map[string]*models.Organization) (*models.Tenant, bool, error) {
	org := orgMap[tenantData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for tenant", tenantData.OrganizationName)
	}

	profile := models.TenantProfile{Kind: models.TenantKind(tenantData.Kind)}
	switch profile.Kind {
	case models.TenantKindResidential:
		profile.Residential = &models.ResidentialProfile{
			FirstName:   tenantData.FirstName,
			LastName:    tenantData.LastName,
			Email:       tenantData.Email,
			PhoneNumber: tenantData.PhoneNumber,
		}
	case models.TenantKindCommercial:
		profile.Commercial = &models.CommercialProfile{
			LegalName:    tenantData.LegalName,
			TradeName:    tenantData.TradeName,
			ContactName:  tenantData.ContactName,
			ContactEmail: tenantData.ContactEmail,
		}
	}
	if err := profile.Validate(); err != nil {
		return nil, false, err
	}

	// Tenants have no natural key; match on the profile display name within the org
	displayName := profile.DisplayName()
	var existing []models.Tenant
	if err := db.Where("organization_id = ?", org.ID).Find(&existing).Error; err != nil {
		return nil, false, fmt.Errorf("failed to query tenants: %w", err)
	}
	for i := range existing {
		if existing[i].Profile.DisplayName() == displayName {
			return &existing[i], false, nil
		}
	}

	tenant := models.Tenant{
		OrganizationID: org.ID,
		Profile:        profile,
	}
	if err := db.Create(&tenant).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create tenant: %w", err)
	}
	return &tenant, true, nil
}
