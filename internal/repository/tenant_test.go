//go:build integration
// +build integration

package repository

import (
	"testing"

	"property-portal-backend/internal/database/models"
	"property-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenantRepositoryTestSuite tests the TenantRepository
type TenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TenantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TenantRepositoryTestSuite) createOrg() *models.Organization {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)
	return org
}

// TestResidentialProfileRoundTrip tests the jsonb profile survives storage
func (suite *TenantRepositoryTestSuite) TestResidentialProfileRoundTrip() {
	org := suite.createOrg()
	tenant := suite.factories.Tenant.Create(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	retrieved, err := suite.repo.GetByID(tenant.ID)

	suite.NoError(err)
	suite.Equal(models.TenantKindResidential, retrieved.Profile.Kind)
	suite.NotNil(retrieved.Profile.Residential)
	suite.Nil(retrieved.Profile.Commercial)
	suite.Equal("Alex", retrieved.Profile.Residential.FirstName)
}

// TestCommercialProfileRoundTrip tests the commercial profile shape
func (suite *TenantRepositoryTestSuite) TestCommercialProfileRoundTrip() {
	org := suite.createOrg()
	tenant := suite.factories.Tenant.Commercial(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	retrieved, err := suite.repo.GetByID(tenant.ID)

	suite.NoError(err)
	suite.Equal(models.TenantKindCommercial, retrieved.Profile.Kind)
	suite.NotNil(retrieved.Profile.Commercial)
	suite.Nil(retrieved.Profile.Residential)
	suite.Equal("Corner Bakery LLC", retrieved.Profile.Commercial.LegalName)
}

// TestLeaseBackReferencesRoundTrip tests the denormalized lease id set
func (suite *TenantRepositoryTestSuite) TestLeaseBackReferencesRoundTrip() {
	org := suite.createOrg()
	leaseA := uuid.New()
	leaseB := uuid.New()
	tenant := suite.factories.Tenant.WithLeases(org.ID, leaseA, leaseB)
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	retrieved, err := suite.repo.GetByID(tenant.ID)

	suite.NoError(err)
	suite.Len(retrieved.LeaseIDs, 2)
	suite.True(retrieved.LeaseIDs.Contains(leaseA))
	suite.True(retrieved.LeaseIDs.Contains(leaseB))
}

// TestGetByIDs tests the bulk lookup used by the integrity guard
func (suite *TenantRepositoryTestSuite) TestGetByIDs() {
	org := suite.createOrg()
	t1 := suite.factories.Tenant.Create(org.ID)
	t2 := suite.factories.Tenant.Create(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(t1).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(t2).Error)

	tenants, err := suite.repo.GetByIDs([]uuid.UUID{t1.ID, t2.ID, uuid.New()})

	suite.NoError(err)
	suite.Len(tenants, 2)
}

// TestGetByIDNotFound tests retrieving a non-existent tenant
func (suite *TenantRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListByOrganization tests paginated tenant listing
func (suite *TenantRepositoryTestSuite) TestListByOrganization() {
	org := suite.createOrg()
	other := suite.createOrg()

	for i := 0; i < 3; i++ {
		t := suite.factories.Tenant.Create(org.ID)
		suite.NoError(suite.baseTestSuite.DB.Create(t).Error)
	}
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Tenant.Create(other.ID)).Error)

	tenants, total, err := suite.repo.ListByOrganization(org.ID, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(tenants, 2)
}

// TestTenantRepositoryTestSuite runs the test suite
func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}
