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
)

type IntegrityGuardTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockTenants *mocks.MockTenantRepositoryInterface
	mockCases   *mocks.MockCaseRepositoryInterface
	mockUnits   *mocks.MockUnitRepositoryInterface
	guard       *service.IntegrityGuard
}

func (suite *IntegrityGuardTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenants = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockCases = mocks.NewMockCaseRepositoryInterface(suite.ctrl)
	suite.mockUnits = mocks.NewMockUnitRepositoryInterface(suite.ctrl)
	suite.guard = service.NewIntegrityGuard(suite.mockTenants, suite.mockCases, suite.mockUnits)
}

func (suite *IntegrityGuardTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IntegrityGuardTestSuite) TestGuardTenantDelete_ReferencedByLease() {
	tenant := &models.Tenant{
		BaseModel: models.BaseModel{ID: uuid.New()},
		LeaseIDs:  models.UUIDSet{uuid.New()},
	}

	err := suite.guard.GuardTenantDelete(tenant)

	assert.ErrorIs(suite.T(), err, apperrors.ErrHasLeases)
}

func (suite *IntegrityGuardTestSuite) TestGuardTenantDelete_NoLeases() {
	tenant := &models.Tenant{BaseModel: models.BaseModel{ID: uuid.New()}}

	assert.NoError(suite.T(), suite.guard.GuardTenantDelete(tenant))
}

func (suite *IntegrityGuardTestSuite) TestGuardUnitDelete_Occupied() {
	unit := &models.Unit{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Status:    models.UnitStatusOccupied,
	}

	err := suite.guard.GuardUnitDelete(unit)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnitOccupied)
}

func (suite *IntegrityGuardTestSuite) TestGuardUnitDelete_Vacant() {
	unit := &models.Unit{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Status:    models.UnitStatusVacant,
	}

	assert.NoError(suite.T(), suite.guard.GuardUnitDelete(unit))
}

func (suite *IntegrityGuardTestSuite) TestGuardPropertyDelete_HasUnits() {
	property := &models.Property{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockUnits.EXPECT().HasUnits(property.ID).Return(true, nil)

	err := suite.guard.GuardPropertyDelete(property)

	assert.ErrorIs(suite.T(), err, apperrors.ErrHasChildren)
}

func (suite *IntegrityGuardTestSuite) TestGuardPropertyDelete_Empty() {
	property := &models.Property{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockUnits.EXPECT().HasUnits(property.ID).Return(false, nil)

	assert.NoError(suite.T(), suite.guard.GuardPropertyDelete(property))
}

func (suite *IntegrityGuardTestSuite) TestGuardCaseDelete_HasTasks() {
	legalCase := &models.LegalCase{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockCases.EXPECT().HasTasks(legalCase.ID).Return(true, nil)

	err := suite.guard.GuardCaseDelete(legalCase)

	assert.ErrorIs(suite.T(), err, apperrors.ErrHasChildren)
}

func (suite *IntegrityGuardTestSuite) TestGuardCaseDelete_HasDocuments() {
	legalCase := &models.LegalCase{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockCases.EXPECT().HasTasks(legalCase.ID).Return(false, nil)
	suite.mockCases.EXPECT().HasDocuments(legalCase.ID).Return(true, nil)

	err := suite.guard.GuardCaseDelete(legalCase)

	assert.ErrorIs(suite.T(), err, apperrors.ErrHasChildren)
}

func (suite *IntegrityGuardTestSuite) TestGuardCaseDelete_NoChildren() {
	legalCase := &models.LegalCase{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockCases.EXPECT().HasTasks(legalCase.ID).Return(false, nil)
	suite.mockCases.EXPECT().HasDocuments(legalCase.ID).Return(false, nil)

	assert.NoError(suite.T(), suite.guard.GuardCaseDelete(legalCase))
}

func (suite *IntegrityGuardTestSuite) TestGuardOrganizationArchive() {
	active := &models.Organization{Status: models.OrganizationStatusActive}
	archived := &models.Organization{Status: models.OrganizationStatusArchived}

	assert.NoError(suite.T(), suite.guard.GuardOrganizationArchive(active))
	assert.ErrorIs(suite.T(), suite.guard.GuardOrganizationArchive(archived), apperrors.ErrAlreadyArchived)
}

func (suite *IntegrityGuardTestSuite) TestGuardOrganizationRestore() {
	active := &models.Organization{Status: models.OrganizationStatusActive}
	archived := &models.Organization{Status: models.OrganizationStatusArchived}

	assert.NoError(suite.T(), suite.guard.GuardOrganizationRestore(archived))
	assert.ErrorIs(suite.T(), suite.guard.GuardOrganizationRestore(active), apperrors.ErrNotArchived)
}

func TestIntegrityGuardTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrityGuardTestSuite))
}
