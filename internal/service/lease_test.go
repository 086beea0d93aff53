package service_test

import (
	"context"
	"testing"
	"time"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/mocks"
	"property-portal-backend/internal/repository"
	"property-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeaseServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockLeases      *mocks.MockLeaseRepositoryInterface
	mockUnits       *mocks.MockUnitRepositoryInterface
	mockTenants     *mocks.MockTenantRepositoryInterface
	mockCases       *mocks.MockCaseRepositoryInterface
	mockMemberships *mocks.MockMembershipRepositoryInterface
	mockCommitter   *mocks.MockBatchCommitter
	svc             *service.LeaseService

	orgID      uuid.UUID
	propertyID uuid.UUID
	unitID     uuid.UUID
	actorID    uuid.UUID
}

func (suite *LeaseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeases = mocks.NewMockLeaseRepositoryInterface(suite.ctrl)
	suite.mockUnits = mocks.NewMockUnitRepositoryInterface(suite.ctrl)
	suite.mockTenants = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockCases = mocks.NewMockCaseRepositoryInterface(suite.ctrl)
	suite.mockMemberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockCommitter = mocks.NewMockBatchCommitter(suite.ctrl)

	guard := service.NewIntegrityGuard(suite.mockTenants, suite.mockCases, suite.mockUnits)
	authorizer := service.NewAuthorizer(suite.mockMemberships)
	suite.svc = service.NewLeaseService(
		suite.mockLeases, suite.mockUnits, suite.mockTenants,
		guard, authorizer, service.NewAuditRecorder(), suite.mockCommitter,
		validator.New(),
	)

	suite.orgID = uuid.New()
	suite.propertyID = uuid.New()
	suite.unitID = uuid.New()
	suite.actorID = uuid.New()
}

func (suite *LeaseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeaseServiceTestSuite) expectActor(role models.MembershipRole) {
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.actorID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         suite.actorID,
		Role:           role,
		Status:         models.MembershipStatusActive,
	}, nil)
}

func (suite *LeaseServiceTestSuite) unit() *models.Unit {
	return &models.Unit{
		BaseModel:      models.BaseModel{ID: suite.unitID},
		OrganizationID: suite.orgID,
		PropertyID:     suite.propertyID,
		Status:         models.UnitStatusVacant,
	}
}

func (suite *LeaseServiceTestSuite) tenant(id uuid.UUID, leaseIDs ...uuid.UUID) models.Tenant {
	return models.Tenant{
		BaseModel:      models.BaseModel{ID: id},
		OrganizationID: suite.orgID,
		LeaseIDs:       models.UUIDSet(leaseIDs),
	}
}

func (suite *LeaseServiceTestSuite) createRequest(tenantIDs ...uuid.UUID) *service.CreateLeaseRequest {
	return &service.CreateLeaseRequest{
		OrganizationID: suite.orgID,
		PropertyID:     suite.propertyID,
		UnitID:         suite.unitID,
		TenantIDs:      tenantIDs,
		StartDate:      time.Now(),
		MonthlyRent:    1200,
	}
}

func (suite *LeaseServiceTestSuite) TestCreate_SyncsTenantBackReferences() {
	tenantA := uuid.New()
	tenantB := uuid.New()
	suite.expectActor(models.MembershipRoleManager)
	suite.mockUnits.EXPECT().GetByID(suite.unitID).Return(suite.unit(), nil)
	suite.mockTenants.EXPECT().GetByIDs([]uuid.UUID{tenantA, tenantB}).
		Return([]models.Tenant{suite.tenant(tenantA), suite.tenant(tenantB)}, nil)

	var committed *repository.Batch
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch *repository.Batch) error {
			committed = batch
			return nil
		})

	resp, err := suite.svc.Create(context.Background(), suite.actorID, suite.createRequest(tenantA, tenantB))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "draft", resp.Status)

	// lease create + one back-reference update per tenant + audit entry
	assert.Equal(suite.T(), 4, committed.Len())
	var updates []repository.UpdateOp
	for _, op := range committed.Ops() {
		if u, ok := op.(repository.UpdateOp); ok {
			updates = append(updates, u)
		}
	}
	assert.Len(suite.T(), updates, 2)
	for _, u := range updates {
		ids, ok := u.Updates["lease_ids"].(models.UUIDSet)
		assert.True(suite.T(), ok)
		assert.True(suite.T(), ids.Contains(resp.ID))
	}
}

func (suite *LeaseServiceTestSuite) TestCreate_ActivateFlag() {
	tenantA := uuid.New()
	suite.expectActor(models.MembershipRoleAdmin)
	suite.mockUnits.EXPECT().GetByID(suite.unitID).Return(suite.unit(), nil)
	suite.mockTenants.EXPECT().GetByIDs([]uuid.UUID{tenantA}).
		Return([]models.Tenant{suite.tenant(tenantA)}, nil)
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

	req := suite.createRequest(tenantA)
	req.Activate = true
	resp, err := suite.svc.Create(context.Background(), suite.actorID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "active", resp.Status)
}

func (suite *LeaseServiceTestSuite) TestCreate_MissingTenant() {
	tenantA := uuid.New()
	tenantB := uuid.New()
	suite.expectActor(models.MembershipRoleManager)
	suite.mockUnits.EXPECT().GetByID(suite.unitID).Return(suite.unit(), nil)
	// only one of the two referenced tenants exists
	suite.mockTenants.EXPECT().GetByIDs([]uuid.UUID{tenantA, tenantB}).
		Return([]models.Tenant{suite.tenant(tenantA)}, nil)

	resp, err := suite.svc.Create(context.Background(), suite.actorID, suite.createRequest(tenantA, tenantB))

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantNotFound)
}

func (suite *LeaseServiceTestSuite) TestCreate_TenantFromOtherOrganization() {
	tenantA := uuid.New()
	suite.expectActor(models.MembershipRoleManager)
	suite.mockUnits.EXPECT().GetByID(suite.unitID).Return(suite.unit(), nil)
	foreign := suite.tenant(tenantA)
	foreign.OrganizationID = uuid.New()
	suite.mockTenants.EXPECT().GetByIDs([]uuid.UUID{tenantA}).
		Return([]models.Tenant{foreign}, nil)

	_, err := suite.svc.Create(context.Background(), suite.actorID, suite.createRequest(tenantA))

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaseServiceTestSuite) TestCreate_UnitPropertyMismatch() {
	tenantA := uuid.New()
	suite.expectActor(models.MembershipRoleManager)
	wrongUnit := suite.unit()
	wrongUnit.PropertyID = uuid.New()
	suite.mockUnits.EXPECT().GetByID(suite.unitID).Return(wrongUnit, nil)

	_, err := suite.svc.Create(context.Background(), suite.actorID, suite.createRequest(tenantA))

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaseServiceTestSuite) TestCreate_MaintenanceRoleDenied() {
	suite.expectActor(models.MembershipRoleMaintenance)

	_, err := suite.svc.Create(context.Background(), suite.actorID, suite.createRequest(uuid.New()))

	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleNotPermitted)
}

func (suite *LeaseServiceTestSuite) TestUpdateStatus_EndRemovesBackReferences() {
	leaseID := uuid.New()
	tenantA := uuid.New()
	lease := &models.Lease{
		BaseModel:      models.BaseModel{ID: leaseID},
		OrganizationID: suite.orgID,
		PropertyID:     suite.propertyID,
		UnitID:         suite.unitID,
		TenantIDs:      models.UUIDList{tenantA},
		Status:         models.LeaseStatusActive,
	}
	suite.mockLeases.EXPECT().GetByID(leaseID).Return(lease, nil)
	suite.expectActor(models.MembershipRoleManager)
	suite.mockTenants.EXPECT().GetByIDs([]uuid.UUID{tenantA}).
		Return([]models.Tenant{suite.tenant(tenantA, leaseID)}, nil)

	var committed *repository.Batch
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch *repository.Batch) error {
			committed = batch
			return nil
		})

	resp, err := suite.svc.UpdateStatus(context.Background(), suite.actorID, leaseID, models.LeaseStatusEnded)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ended", resp.Status)

	// lease save + back-reference removal + audit entry
	assert.Equal(suite.T(), 3, committed.Len())
	for _, op := range committed.Ops() {
		if u, ok := op.(repository.UpdateOp); ok {
			ids, _ := u.Updates["lease_ids"].(models.UUIDSet)
			assert.False(suite.T(), ids.Contains(leaseID))
		}
	}
}

func (suite *LeaseServiceTestSuite) TestUpdateStatus_TerminalIsFinal() {
	leaseID := uuid.New()
	lease := &models.Lease{
		BaseModel:      models.BaseModel{ID: leaseID},
		OrganizationID: suite.orgID,
		PropertyID:     suite.propertyID,
		Status:         models.LeaseStatusEnded,
	}
	suite.mockLeases.EXPECT().GetByID(leaseID).Return(lease, nil)
	suite.expectActor(models.MembershipRoleManager)

	_, err := suite.svc.UpdateStatus(context.Background(), suite.actorID, leaseID, models.LeaseStatusActive)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaseServiceTestSuite) TestUpdateStatus_NoReturnToDraft() {
	leaseID := uuid.New()
	lease := &models.Lease{
		BaseModel:      models.BaseModel{ID: leaseID},
		OrganizationID: suite.orgID,
		PropertyID:     suite.propertyID,
		Status:         models.LeaseStatusActive,
	}
	suite.mockLeases.EXPECT().GetByID(leaseID).Return(lease, nil)
	suite.expectActor(models.MembershipRoleManager)

	_, err := suite.svc.UpdateStatus(context.Background(), suite.actorID, leaseID, models.LeaseStatusDraft)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaseServiceTestSuite) TestDelete_NonDraftRejected() {
	leaseID := uuid.New()
	lease := &models.Lease{
		BaseModel:      models.BaseModel{ID: leaseID},
		OrganizationID: suite.orgID,
		PropertyID:     suite.propertyID,
		Status:         models.LeaseStatusActive,
	}
	suite.mockLeases.EXPECT().GetByID(leaseID).Return(lease, nil)
	suite.expectActor(models.MembershipRoleAdmin)

	err := suite.svc.Delete(context.Background(), suite.actorID, leaseID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaseNotDraft)
}

func (suite *LeaseServiceTestSuite) TestDelete_DraftSuccess() {
	leaseID := uuid.New()
	tenantA := uuid.New()
	lease := &models.Lease{
		BaseModel:      models.BaseModel{ID: leaseID},
		OrganizationID: suite.orgID,
		PropertyID:     suite.propertyID,
		TenantIDs:      models.UUIDList{tenantA},
		Status:         models.LeaseStatusDraft,
	}
	suite.mockLeases.EXPECT().GetByID(leaseID).Return(lease, nil)
	suite.expectActor(models.MembershipRoleAdmin)
	suite.mockTenants.EXPECT().GetByIDs([]uuid.UUID{tenantA}).
		Return([]models.Tenant{suite.tenant(tenantA, leaseID)}, nil)

	var committed *repository.Batch
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch *repository.Batch) error {
			committed = batch
			return nil
		})

	err := suite.svc.Delete(context.Background(), suite.actorID, leaseID)

	assert.NoError(suite.T(), err)
	// back-reference removal + lease delete + audit entry
	assert.Equal(suite.T(), 3, committed.Len())
}

func (suite *LeaseServiceTestSuite) TestGetByID_TenantRoleSelfAccess() {
	leaseID := uuid.New()
	tenantID := uuid.New()
	lease := &models.Lease{
		BaseModel:      models.BaseModel{ID: leaseID},
		OrganizationID: suite.orgID,
		PropertyID:     suite.propertyID,
		TenantIDs:      models.UUIDList{tenantID},
		Status:         models.LeaseStatusActive,
		StartDate:      time.Now(),
	}
	suite.mockLeases.EXPECT().GetByID(leaseID).Return(lease, nil)
	suite.expectActor(models.MembershipRoleTenant)
	ownTenant := suite.tenant(tenantID, leaseID)
	ownTenant.UserID = &suite.actorID
	suite.mockTenants.EXPECT().GetByIDs([]uuid.UUID{tenantID}).
		Return([]models.Tenant{ownTenant}, nil)

	resp, err := suite.svc.GetByID(suite.actorID, leaseID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), leaseID, resp.ID)
}

func (suite *LeaseServiceTestSuite) TestGetByID_TenantRoleForeignLeaseDenied() {
	leaseID := uuid.New()
	tenantID := uuid.New()
	lease := &models.Lease{
		BaseModel:      models.BaseModel{ID: leaseID},
		OrganizationID: suite.orgID,
		PropertyID:     suite.propertyID,
		TenantIDs:      models.UUIDList{tenantID},
		Status:         models.LeaseStatusActive,
		StartDate:      time.Now(),
	}
	suite.mockLeases.EXPECT().GetByID(leaseID).Return(lease, nil)
	suite.expectActor(models.MembershipRoleTenant)
	otherUser := uuid.New()
	foreignTenant := suite.tenant(tenantID, leaseID)
	foreignTenant.UserID = &otherUser
	suite.mockTenants.EXPECT().GetByIDs([]uuid.UUID{tenantID}).
		Return([]models.Tenant{foreignTenant}, nil)

	_, err := suite.svc.GetByID(suite.actorID, leaseID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOutOfScope)
}

func TestLeaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaseServiceTestSuite))
}
