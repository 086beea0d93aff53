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
	"gorm.io/gorm"
)

type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockMemberships *mocks.MockMembershipRepositoryInterface
	mockUsers       *mocks.MockUserRepositoryInterface
	mockOrgs        *mocks.MockOrganizationRepositoryInterface
	mockCommitter   *mocks.MockBatchCommitter
	svc             *service.MembershipService

	orgID   uuid.UUID
	adminID uuid.UUID
}

func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockCommitter = mocks.NewMockBatchCommitter(suite.ctrl)

	authorizer := service.NewAuthorizer(suite.mockMemberships)
	suite.svc = service.NewMembershipService(
		suite.mockMemberships, suite.mockUsers, suite.mockOrgs,
		authorizer, service.NewAuditRecorder(), suite.mockCommitter,
		nil, validator.New(),
	)

	suite.orgID = uuid.New()
	suite.adminID = uuid.New()
}

func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) expectActiveAdmin() {
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.adminID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         suite.adminID,
		Role:           models.MembershipRoleAdmin,
		Status:         models.MembershipStatusActive,
	}, nil)
}

// opCounts tallies a committed batch by op type
func opCounts(batch *repository.Batch) (saves, creates, updates, deletes int) {
	for _, op := range batch.Ops() {
		switch op.(type) {
		case repository.SaveOp:
			saves++
		case repository.CreateOp:
			creates++
		case repository.UpdateOp:
			updates++
		case repository.DeleteOp:
			deletes++
		}
	}
	return
}

func (suite *MembershipServiceTestSuite) TestInvite_NewUser_Success() {
	suite.expectActiveAdmin()
	suite.mockUsers.EXPECT().GetByEmail("new@example.com").Return(nil, gorm.ErrRecordNotFound)

	var committed *repository.Batch
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch *repository.Batch) error {
			committed = batch
			return nil
		})

	resp, err := suite.svc.Invite(context.Background(), suite.adminID, suite.orgID, &service.InviteMemberRequest{
		Email: "new@example.com",
		Role:  "manager",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "manager", resp.Role)
	assert.Equal(suite.T(), "invited", resp.Status)
	assert.Equal(suite.T(), suite.adminID, resp.InvitedBy)

	// user create + membership create + audit entry, all in one batch
	assert.NotNil(suite.T(), committed)
	_, creates, _, _ := opCounts(committed)
	assert.Equal(suite.T(), 3, creates)
	assert.Equal(suite.T(), 3, committed.Len())
}

func (suite *MembershipServiceTestSuite) TestInvite_ExistingUser_Success() {
	userID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockUsers.EXPECT().GetByEmail("known@example.com").Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
		Email:     "known@example.com",
	}, nil)
	suite.mockMemberships.EXPECT().Get(suite.orgID, userID).Return(nil, gorm.ErrRecordNotFound)

	var committed *repository.Batch
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch *repository.Batch) error {
			committed = batch
			return nil
		})

	resp, err := suite.svc.Invite(context.Background(), suite.adminID, suite.orgID, &service.InviteMemberRequest{
		Email: "known@example.com",
		Role:  "legal",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), userID, resp.UserID)
	// membership create + audit only; the user already exists
	assert.Equal(suite.T(), 2, committed.Len())
}

func (suite *MembershipServiceTestSuite) TestInvite_AlreadyMember() {
	userID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockUsers.EXPECT().GetByEmail("member@example.com").Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
	}, nil)
	suite.mockMemberships.EXPECT().Get(suite.orgID, userID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         userID,
		Status:         models.MembershipStatusActive,
	}, nil)

	resp, err := suite.svc.Invite(context.Background(), suite.adminID, suite.orgID, &service.InviteMemberRequest{
		Email: "member@example.com",
		Role:  "manager",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyMember)
}

func (suite *MembershipServiceTestSuite) TestInvite_DisabledMember() {
	userID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockUsers.EXPECT().GetByEmail("disabled@example.com").Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
	}, nil)
	suite.mockMemberships.EXPECT().Get(suite.orgID, userID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         userID,
		Status:         models.MembershipStatusDisabled,
	}, nil)

	_, err := suite.svc.Invite(context.Background(), suite.adminID, suite.orgID, &service.InviteMemberRequest{
		Email: "disabled@example.com",
		Role:  "manager",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberDisabled)
	assert.Equal(suite.T(), apperrors.CodeMemberDisabled, apperrors.ConflictCodeOf(err))
}

func (suite *MembershipServiceTestSuite) TestInvite_NonAdminDenied() {
	suite.mockMemberships.EXPECT().Get(suite.orgID, suite.adminID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         suite.adminID,
		Role:           models.MembershipRoleManager,
		Status:         models.MembershipStatusActive,
	}, nil)

	_, err := suite.svc.Invite(context.Background(), suite.adminID, suite.orgID, &service.InviteMemberRequest{
		Email: "x@example.com",
		Role:  "manager",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleNotPermitted)
}

func (suite *MembershipServiceTestSuite) TestInvite_UnknownRole() {
	_, err := suite.svc.Invite(context.Background(), suite.adminID, suite.orgID, &service.InviteMemberRequest{
		Email: "x@example.com",
		Role:  "landlord",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MembershipServiceTestSuite) TestAccept_Success() {
	userID := uuid.New()
	suite.mockMemberships.EXPECT().Get(suite.orgID, userID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         userID,
		Role:           models.MembershipRoleManager,
		Status:         models.MembershipStatusInvited,
	}, nil)
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.svc.Accept(context.Background(), userID, suite.orgID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "active", resp.Status)
	assert.NotNil(suite.T(), resp.JoinedAt)
}

func (suite *MembershipServiceTestSuite) TestAccept_AlreadyProcessed() {
	userID := uuid.New()
	joined := time.Now().Add(-time.Hour)
	suite.mockMemberships.EXPECT().Get(suite.orgID, userID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         userID,
		Status:         models.MembershipStatusActive,
		JoinedAt:       &joined,
	}, nil)

	_, err := suite.svc.Accept(context.Background(), userID, suite.orgID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *MembershipServiceTestSuite) TestAccept_NoInvitation() {
	userID := uuid.New()
	suite.mockMemberships.EXPECT().Get(suite.orgID, userID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Accept(context.Background(), userID, suite.orgID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotFound)
}

func (suite *MembershipServiceTestSuite) TestDecline_Success() {
	userID := uuid.New()
	suite.mockMemberships.EXPECT().Get(suite.orgID, userID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         userID,
		Status:         models.MembershipStatusInvited,
	}, nil)

	var committed *repository.Batch
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch *repository.Batch) error {
			committed = batch
			return nil
		})

	err := suite.svc.Decline(context.Background(), userID, suite.orgID)

	assert.NoError(suite.T(), err)
	_, creates, _, deletes := opCounts(committed)
	assert.Equal(suite.T(), 1, deletes)
	assert.Equal(suite.T(), 1, creates) // audit entry
}

func (suite *MembershipServiceTestSuite) TestUpdate_DemoteLastAdmin() {
	targetID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockMemberships.EXPECT().Get(suite.orgID, targetID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         targetID,
		Role:           models.MembershipRoleAdmin,
		Status:         models.MembershipStatusActive,
	}, nil)
	suite.mockMemberships.EXPECT().CountActiveAdmins(suite.orgID, targetID).Return(int64(0), nil)

	role := "manager"
	_, err := suite.svc.Update(context.Background(), suite.adminID, suite.orgID, targetID, &service.UpdateMembershipRequest{
		Role: &role,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLastAdmin)
	assert.Equal(suite.T(), apperrors.CodeLastAdmin, apperrors.ConflictCodeOf(err))
}

func (suite *MembershipServiceTestSuite) TestUpdate_DemoteAdminWithRemainingAdmin() {
	targetID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockMemberships.EXPECT().Get(suite.orgID, targetID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         targetID,
		Role:           models.MembershipRoleAdmin,
		Status:         models.MembershipStatusActive,
	}, nil)
	suite.mockMemberships.EXPECT().CountActiveAdmins(suite.orgID, targetID).Return(int64(1), nil)
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

	role := "accounting"
	resp, err := suite.svc.Update(context.Background(), suite.adminID, suite.orgID, targetID, &service.UpdateMembershipRequest{
		Role: &role,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "accounting", resp.Role)
}

func (suite *MembershipServiceTestSuite) TestUpdate_DisableLastAdmin() {
	targetID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockMemberships.EXPECT().Get(suite.orgID, targetID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         targetID,
		Role:           models.MembershipRoleAdmin,
		Status:         models.MembershipStatusActive,
	}, nil)
	suite.mockMemberships.EXPECT().CountActiveAdmins(suite.orgID, targetID).Return(int64(0), nil)

	status := "disabled"
	_, err := suite.svc.Update(context.Background(), suite.adminID, suite.orgID, targetID, &service.UpdateMembershipRequest{
		Status: &status,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLastAdmin)
}

func (suite *MembershipServiceTestSuite) TestUpdate_DisableNonAdminSkipsGuard() {
	targetID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockMemberships.EXPECT().Get(suite.orgID, targetID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         targetID,
		Role:           models.MembershipRoleMaintenance,
		Status:         models.MembershipStatusActive,
	}, nil)
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

	status := "disabled"
	resp, err := suite.svc.Update(context.Background(), suite.adminID, suite.orgID, targetID, &service.UpdateMembershipRequest{
		Status: &status,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "disabled", resp.Status)
}

func (suite *MembershipServiceTestSuite) TestUpdate_ActivateInvitedSetsJoinedAt() {
	targetID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockMemberships.EXPECT().Get(suite.orgID, targetID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         targetID,
		Role:           models.MembershipRoleManager,
		Status:         models.MembershipStatusInvited,
	}, nil)
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

	status := "active"
	resp, err := suite.svc.Update(context.Background(), suite.adminID, suite.orgID, targetID, &service.UpdateMembershipRequest{
		Status: &status,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "active", resp.Status)
	assert.NotNil(suite.T(), resp.JoinedAt)
}

func (suite *MembershipServiceTestSuite) TestRemove_LastAdmin() {
	targetID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockMemberships.EXPECT().Get(suite.orgID, targetID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         targetID,
		Role:           models.MembershipRoleAdmin,
		Status:         models.MembershipStatusActive,
	}, nil)
	suite.mockMemberships.EXPECT().CountActiveAdmins(suite.orgID, targetID).Return(int64(0), nil)

	err := suite.svc.Remove(context.Background(), suite.adminID, suite.orgID, targetID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLastAdmin)
}

func (suite *MembershipServiceTestSuite) TestRemove_InvitedAdminSkipsGuard() {
	// An invited admin is not an active admin, so removing them cannot
	// orphan the organization and the guard is not consulted.
	targetID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockMemberships.EXPECT().Get(suite.orgID, targetID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         targetID,
		Role:           models.MembershipRoleAdmin,
		Status:         models.MembershipStatusInvited,
	}, nil)
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

	err := suite.svc.Remove(context.Background(), suite.adminID, suite.orgID, targetID)

	assert.NoError(suite.T(), err)
}

func (suite *MembershipServiceTestSuite) TestRemove_Success() {
	targetID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockMemberships.EXPECT().Get(suite.orgID, targetID).Return(&models.Membership{
		OrganizationID: suite.orgID,
		UserID:         targetID,
		Role:           models.MembershipRoleAdmin,
		Status:         models.MembershipStatusActive,
	}, nil)
	suite.mockMemberships.EXPECT().CountActiveAdmins(suite.orgID, targetID).Return(int64(2), nil)

	var committed *repository.Batch
	suite.mockCommitter.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch *repository.Batch) error {
			committed = batch
			return nil
		})

	err := suite.svc.Remove(context.Background(), suite.adminID, suite.orgID, targetID)

	assert.NoError(suite.T(), err)
	_, creates, _, deletes := opCounts(committed)
	assert.Equal(suite.T(), 1, deletes)
	assert.Equal(suite.T(), 1, creates)
}

func (suite *MembershipServiceTestSuite) TestRemove_NotFound() {
	targetID := uuid.New()
	suite.expectActiveAdmin()
	suite.mockMemberships.EXPECT().Get(suite.orgID, targetID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.svc.Remove(context.Background(), suite.adminID, suite.orgID, targetID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
