//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"property-portal-backend/internal/database/models"
	"property-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BatchCommitterTestSuite tests the transactional batch committer
type BatchCommitterTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	committer     *GormBatchCommitter
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BatchCommitterTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.committer = NewBatchCommitter(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BatchCommitterTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BatchCommitterTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BatchCommitterTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCommitMultipleOps tests that one batch persists all its writes
func (suite *BatchCommitterTestSuite) TestCommitMultipleOps() {
	org := suite.factories.Organization.Create()
	user := suite.factories.User.Create()

	batch := NewBatch().
		Create(org).
		Create(user).
		Create(suite.factories.Membership.Create(org.ID, user.ID))

	err := suite.committer.Commit(context.Background(), batch)
	suite.NoError(err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Membership{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestCommitRollsBackOnFailure tests that a failing op discards the whole batch
func (suite *BatchCommitterTestSuite) TestCommitRollsBackOnFailure() {
	existing := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(existing).Error)

	org := suite.factories.Organization.Create()
	duplicate := suite.factories.User.WithEmail(existing.Email)

	batch := NewBatch().
		Create(org).
		Create(duplicate)

	err := suite.committer.Commit(context.Background(), batch)
	suite.Error(err)

	// The organization write from the same batch must be gone too
	var found models.Organization
	err = suite.baseTestSuite.DB.First(&found, "id = ?", org.ID).Error
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCommitUpdateAndDelete tests partial updates and deletes in one batch
func (suite *BatchCommitterTestSuite) TestCommitUpdateAndDelete() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)
	property := suite.factories.Property.Create(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(property).Error)
	unit := suite.factories.Unit.Create(org.ID, property.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(unit).Error)
	tenant := suite.factories.Tenant.Create(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	batch := NewBatch().
		Update(&models.Unit{BaseModel: models.BaseModel{ID: unit.ID}}, map[string]interface{}{
			"status": models.UnitStatusMaintenance,
		}).
		Delete(&models.Tenant{BaseModel: models.BaseModel{ID: tenant.ID}})

	err := suite.committer.Commit(context.Background(), batch)
	suite.NoError(err)

	var updated models.Unit
	suite.NoError(suite.baseTestSuite.DB.First(&updated, "id = ?", unit.ID).Error)
	suite.Equal(models.UnitStatusMaintenance, updated.Status)

	var gone models.Tenant
	err = suite.baseTestSuite.DB.First(&gone, "id = ?", tenant.ID).Error
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCommitEmptyBatch tests that an empty or nil batch is a no-op
func (suite *BatchCommitterTestSuite) TestCommitEmptyBatch() {
	suite.NoError(suite.committer.Commit(context.Background(), NewBatch()))
	suite.NoError(suite.committer.Commit(context.Background(), nil))
}

// TestBatchCommitterTestSuite runs the test suite
func TestBatchCommitterTestSuite(t *testing.T) {
	suite.Run(t, new(BatchCommitterTestSuite))
}
