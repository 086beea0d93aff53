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

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createMember persists an organization, a user, and a membership between them
func (suite *MembershipRepositoryTestSuite) createMember(role models.MembershipRole, status models.MembershipStatus) *models.Membership {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)

	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	m := suite.factories.Membership.WithRole(org.ID, user.ID, role)
	m.Status = status
	suite.NoError(suite.baseTestSuite.DB.Create(m).Error)
	return m
}

// TestGetCompositeKey tests lookup by the (organization, user) pair
func (suite *MembershipRepositoryTestSuite) TestGetCompositeKey() {
	m := suite.createMember(models.MembershipRoleManager, models.MembershipStatusActive)

	retrieved, err := suite.repo.Get(m.OrganizationID, m.UserID)

	suite.NoError(err)
	suite.Equal(m.OrganizationID, retrieved.OrganizationID)
	suite.Equal(m.UserID, retrieved.UserID)
	suite.Equal(models.MembershipRoleManager, retrieved.Role)
}

// TestGetWrongPair tests that either half of the key alone does not match
func (suite *MembershipRepositoryTestSuite) TestGetWrongPair() {
	m := suite.createMember(models.MembershipRoleManager, models.MembershipStatusActive)

	_, err := suite.repo.Get(m.OrganizationID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.Get(uuid.New(), m.UserID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetWithUser tests that the user relation is preloaded
func (suite *MembershipRepositoryTestSuite) TestGetWithUser() {
	m := suite.createMember(models.MembershipRoleAdmin, models.MembershipStatusActive)

	retrieved, err := suite.repo.GetWithUser(m.OrganizationID, m.UserID)

	suite.NoError(err)
	suite.NotEmpty(retrieved.User.Email)
}

// TestCountActiveAdmins tests the admin count excluding the acting user
func (suite *MembershipRepositoryTestSuite) TestCountActiveAdmins() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)

	admin1 := suite.factories.User.Create()
	admin2 := suite.factories.User.Create()
	manager := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(admin1).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(admin2).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(manager).Error)

	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Membership.Create(org.ID, admin1.ID)).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Membership.Create(org.ID, admin2.ID)).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Membership.WithRole(org.ID, manager.ID, models.MembershipRoleManager)).Error)

	count, err := suite.repo.CountActiveAdmins(org.ID, admin1.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestCountActiveAdminsIgnoresInactive tests that disabled and invited admins do not count
func (suite *MembershipRepositoryTestSuite) TestCountActiveAdminsIgnoresInactive() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)

	active := suite.factories.User.Create()
	disabled := suite.factories.User.Create()
	invited := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(active).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(disabled).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(invited).Error)

	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Membership.Create(org.ID, active.ID)).Error)

	m := suite.factories.Membership.Create(org.ID, disabled.ID)
	m.Status = models.MembershipStatusDisabled
	suite.NoError(suite.baseTestSuite.DB.Create(m).Error)

	suite.NoError(suite.baseTestSuite.DB.Create(
		suite.factories.Membership.Invited(org.ID, invited.ID, active.ID, models.MembershipRoleAdmin)).Error)

	// Excluding the only active admin leaves nobody
	count, err := suite.repo.CountActiveAdmins(org.ID, active.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestListByOrganization tests paginated member listing
func (suite *MembershipRepositoryTestSuite) TestListByOrganization() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)

	for i := 0; i < 3; i++ {
		user := suite.factories.User.Create()
		suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
		suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Membership.WithRole(org.ID, user.ID, models.MembershipRoleReadOnly)).Error)
	}

	members, total, err := suite.repo.ListByOrganization(org.ID, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(members, 2)
}

// TestListByUser tests listing memberships across organizations
func (suite *MembershipRepositoryTestSuite) TestListByUser() {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	for i := 0; i < 2; i++ {
		org := suite.factories.Organization.Create()
		suite.NoError(suite.baseTestSuite.DB.Create(org).Error)
		suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Membership.Create(org.ID, user.ID)).Error)
	}

	memberships, err := suite.repo.ListByUser(user.ID)

	suite.NoError(err)
	suite.Len(memberships, 2)
}

// TestPropertyScopesRoundTrip tests the jsonb scope set survives storage
func (suite *MembershipRepositoryTestSuite) TestPropertyScopesRoundTrip() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	scopeA := uuid.New()
	scopeB := uuid.New()
	m := suite.factories.Membership.WithPropertyScopes(org.ID, user.ID, models.MembershipRoleMaintenance, scopeA, scopeB)
	suite.NoError(suite.baseTestSuite.DB.Create(m).Error)

	retrieved, err := suite.repo.Get(org.ID, user.ID)

	suite.NoError(err)
	suite.Len(retrieved.PropertyScopes, 2)
	suite.True(retrieved.PropertyScopes.Contains(scopeA))
	suite.True(retrieved.PropertyScopes.Contains(scopeB))
	suite.False(retrieved.PropertyScopes.Contains(uuid.New()))
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
