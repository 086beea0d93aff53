package service_test

import (
	"context"
	"testing"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/mocks"
	"property-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TenantServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTenants     *mocks.MockTenantRepositoryInterface
	mockCases       *mocks.MockCaseRepositoryInterface
	mockUnits       *mocks.MockUnitRepositoryInterface
	mockMemberships *mocks.MockMembershipRepositoryInterface
	mockCommitter   *mocks.MockBatchCommitter
	svc             *service.TenantService

	orgID   uuid.UUID
	actorID uuid.UUID
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenants = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockCases = mocks.NewMockCaseRepositoryInterface(suite.ctrl)
	suite.mockUnits = mocks.NewMockUnitRepositoryInterface(suite.ctrl)
	suite.mockMemberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockCommitter = mocks.NewMockBatchCommitter(suite.ctrl)

	guard := service.NewIntegrityGuard(suite.mockTenants, suite.mockCases, suite.mockUnits)
	authorizer := service.NewAuthorizer(suite.mockMemberships)
	suite.svc = service.NewTenantService(
		suite.mockTenants, guard, authorizer,
		service.NewAuditRecorder(), suite.mockCommitter, validator.New(),
	)

	suite.orgID = uuid.New()
	suite.actorID = uuid.New()
}

func (suite *TenantServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TenantServiceTestSuite) expectActor(role models.MembershipRole) {
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         suite.actorID,
		Role:           role,
		Status:         models.MembershipStatusActive,
	}, nil)
}

func residentialProfile() models.TenantProfile {
	return models.TenantProfile{
		Kind: models.TenantKindResidential,
		Residential: &models.ResidentialProfile{
			FirstName: "Dana",
			LastName:  "Reyes",
		},
	}
}

func (suite *TenantServiceTestSuite) TestCreate_Residential() {
	suite.expectActor(models.MembershipRoleManager)
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.svc.Create(context.Background(), suite.actorID, &service.CreateTenantRequest{
		OrganizationID: suite.orgID,
		Profile:        residentialProfile(),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Dana Reyes", resp.DisplayName)
	assert.Empty(suite.T(), resp.LeaseIDs)
}

func (suite *TenantServiceTestSuite) TestCreate_ProfileKindMismatch() {
	profile := models.TenantProfile{
		Kind:       models.TenantKindResidential,
		Commercial: &models.CommercialProfile{LegalName: "Acme LLC"},
	}

	resp, err := suite.svc.Create(context.Background(), suite.actorID, &service.CreateTenantRequest{
		OrganizationID: suite.orgID,
		Profile:        profile,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TenantServiceTestSuite) TestCreate_BothShapesRejected() {
	profile := models.TenantProfile{
		Kind:        models.TenantKindResidential,
		Residential: &models.ResidentialProfile{FirstName: "Dana", LastName: "Reyes"},
		Commercial:  &models.CommercialProfile{LegalName: "Acme LLC"},
	}

	_, err := suite.svc.Create(context.Background(), suite.actorID, &service.CreateTenantRequest{
		OrganizationID: suite.orgID,
		Profile:        profile,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TenantServiceTestSuite) TestDelete_ReferencedByLease() {
	tenantID := uuid.New()
	suite.mockTenants.EXPECT().GetByID(tenantID).Return(&models.Tenant{
		BaseModel:      models.BaseModel{ID: tenantID},
		OrganizationID: suite.orgID,
		Profile:        residentialProfile(),
		LeaseIDs:       models.UUIDSet{uuid.New()},
	}, nil)
	suite.expectActor(models.MembershipRoleAdmin)

	err := suite.svc.Delete(context.Background(), suite.actorID, tenantID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrHasLeases)
	assert.Equal(suite.T(), apperrors.CodeHasLeases, apperrors.ConflictCodeOf(err))
}

func (suite *TenantServiceTestSuite) TestDelete_Unreferenced() {
	tenantID := uuid.New()
	suite.mockTenants.EXPECT().GetByID(tenantID).Return(&models.Tenant{
		BaseModel:      models.BaseModel{ID: tenantID},
		OrganizationID: suite.orgID,
		Profile:        residentialProfile(),
		LeaseIDs:       models.UUIDSet{},
	}, nil)
	suite.expectActor(models.MembershipRoleAdmin)
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

	err := suite.svc.Delete(context.Background(), suite.actorID, tenantID)

	assert.NoError(suite.T(), err)
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
