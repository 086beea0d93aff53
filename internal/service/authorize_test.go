package service_test

import (
	"testing"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/mocks"
	"property-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AuthorizerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockMemberships *mocks.MockMembershipRepositoryInterface
	authorizer      *service.Authorizer

	orgID   uuid.UUID
	actorID uuid.UUID
}

func (suite *AuthorizerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.authorizer = service.NewAuthorizer(suite.mockMemberships)
	suite.orgID = uuid.New()
	suite.actorID = uuid.New()
}

func (suite *AuthorizerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthorizerTestSuite) membership(role models.MembershipRole, status models.MembershipStatus) *models.Membership {
	return &models.Membership{
		OrganizationID: suite.orgID,
		UserID:         suite.actorID,
		Role:           role,
		Status:         status,
	}
}

func (suite *AuthorizerTestSuite) TestAuthorize_NotAMember() {
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(nil, gorm.ErrRecordNotFound)

	membership, err := suite.authorizer.Authorize(suite.actorID, suite.orgID, service.AllRoles())

	assert.Nil(suite.T(), membership)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAMember)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *AuthorizerTestSuite) TestAuthorize_InvitedMemberDenied() {
	m := suite.membership(models.MembershipRoleAdmin, models.MembershipStatusInvited)
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(m, nil)

	_, err := suite.authorizer.Authorize(suite.actorID, suite.orgID, service.AllRoles())

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotActive)
}

func (suite *AuthorizerTestSuite) TestAuthorize_DisabledMemberDenied() {
	m := suite.membership(models.MembershipRoleManager, models.MembershipStatusDisabled)
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(m, nil)

	_, err := suite.authorizer.Authorize(suite.actorID, suite.orgID, service.AllRoles())

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotActive)
}

func (suite *AuthorizerTestSuite) TestAuthorize_RoleNotPermitted() {
	m := suite.membership(models.MembershipRoleReadOnly, models.MembershipStatusActive)
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(m, nil)

	_, err := suite.authorizer.Authorize(suite.actorID, suite.orgID,
		[]models.MembershipRole{models.MembershipRoleAdmin, models.MembershipRoleManager})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleNotPermitted)
}

func (suite *AuthorizerTestSuite) TestAuthorize_PropertyOutOfScope() {
	m := suite.membership(models.MembershipRoleManager, models.MembershipStatusActive)
	m.PropertyScopes = models.UUIDSet{uuid.New()}
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(m, nil)

	_, err := suite.authorizer.Authorize(suite.actorID, suite.orgID,
		[]models.MembershipRole{models.MembershipRoleManager},
		service.PropertyScope(uuid.New()))

	assert.ErrorIs(suite.T(), err, apperrors.ErrOutOfScope)
}

func (suite *AuthorizerTestSuite) TestAuthorize_PropertyInScope() {
	propertyID := uuid.New()
	m := suite.membership(models.MembershipRoleManager, models.MembershipStatusActive)
	m.PropertyScopes = models.UUIDSet{propertyID}
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(m, nil)

	got, err := suite.authorizer.Authorize(suite.actorID, suite.orgID,
		[]models.MembershipRole{models.MembershipRoleManager},
		service.PropertyScope(propertyID))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), m, got)
}

func (suite *AuthorizerTestSuite) TestAuthorize_EmptyScopeSetIsUnrestricted() {
	m := suite.membership(models.MembershipRoleManager, models.MembershipStatusActive)
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(m, nil)

	_, err := suite.authorizer.Authorize(suite.actorID, suite.orgID,
		[]models.MembershipRole{models.MembershipRoleManager},
		service.PropertyScope(uuid.New()))

	assert.NoError(suite.T(), err)
}

func (suite *AuthorizerTestSuite) TestAuthorize_AdminBypassesScopes() {
	m := suite.membership(models.MembershipRoleAdmin, models.MembershipStatusActive)
	m.PropertyScopes = models.UUIDSet{uuid.New()}
	m.CaseScopes = models.UUIDSet{uuid.New()}
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(m, nil)

	_, err := suite.authorizer.Authorize(suite.actorID, suite.orgID,
		[]models.MembershipRole{models.MembershipRoleAdmin},
		service.PropertyScope(uuid.New()), service.CaseScope(uuid.New()))

	assert.NoError(suite.T(), err)
}

func (suite *AuthorizerTestSuite) TestAuthorize_LegalBypassesCaseScopesOnly() {
	m := suite.membership(models.MembershipRoleLegal, models.MembershipStatusActive)
	m.CaseScopes = models.UUIDSet{uuid.New()}
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(m, nil)

	_, err := suite.authorizer.Authorize(suite.actorID, suite.orgID,
		[]models.MembershipRole{models.MembershipRoleLegal},
		service.CaseScope(uuid.New()))

	assert.NoError(suite.T(), err)
}

func (suite *AuthorizerTestSuite) TestAuthorize_CaseOutOfScopeForManager() {
	m := suite.membership(models.MembershipRoleManager, models.MembershipStatusActive)
	m.CaseScopes = models.UUIDSet{uuid.New()}
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(m, nil)

	_, err := suite.authorizer.Authorize(suite.actorID, suite.orgID,
		[]models.MembershipRole{models.MembershipRoleManager},
		service.CaseScope(uuid.New()))

	assert.ErrorIs(suite.T(), err, apperrors.ErrOutOfScope)
}

func TestAuthorizerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthorizerTestSuite))
}
