//go:build integration
// +build integration

package repository

import (
	"testing"

	"property-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByID tests retrieving an organization by ID
func (suite *OrganizationRepositoryTestSuite) TestGetByID() {
	org := suite.factories.Organization.Create()
	err := suite.baseTestSuite.DB.Create(org).Error
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(org.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(org.ID, retrieved.ID)
	suite.Equal(org.Name, retrieved.Name)
	suite.Equal(org.Settings.Currency, retrieved.Settings.Currency)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAll tests listing organizations with pagination
func (suite *OrganizationRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		org := suite.factories.Organization.Create()
		suite.NoError(suite.baseTestSuite.DB.Create(org).Error)
	}

	orgs, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(orgs, 2)
}

// TestGetAllIncludesArchived tests that archived organizations stay listed
func (suite *OrganizationRepositoryTestSuite) TestGetAllIncludesArchived() {
	active := suite.factories.Organization.Create()
	archived := suite.factories.Organization.Archived()
	suite.NoError(suite.baseTestSuite.DB.Create(active).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(archived).Error)

	orgs, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(orgs, 2)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
