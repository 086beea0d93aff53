//go:build integration
// +build integration

package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"property-portal-backend/internal/database/models"
	"property-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AuditRepositoryTestSuite tests the AuditRepository
type AuditRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AuditRepository
	committer     *GormBatchCommitter
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AuditRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAuditRepository(suite.baseTestSuite.DB)
	suite.committer = NewBatchCommitter(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AuditRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AuditRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AuditRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AuditRepositoryTestSuite) createOrg() *models.Organization {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)
	return org
}

func (suite *AuditRepositoryTestSuite) newEntry(orgID uuid.UUID, action models.AuditAction, entityType, entityID string, at time.Time) *models.AuditLogEntry {
	return &models.AuditLogEntry{
		ID:             uuid.New(),
		OrganizationID: orgID,
		ActorUserID:    uuid.New(),
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
		After:          json.RawMessage(`{"status":"active"}`),
		CreatedAt:      at,
	}
}

// TestEntryCommittedWithMutation tests that the audit entry lands in the
// same batch as the write it describes
func (suite *AuditRepositoryTestSuite) TestEntryCommittedWithMutation() {
	org := suite.createOrg()
	property := suite.factories.Property.Create(org.ID)

	batch := NewBatch().
		Create(property).
		Create(suite.newEntry(org.ID, models.AuditActionCreate, "property", property.ID.String(), time.Now()))

	suite.NoError(suite.committer.Commit(context.Background(), batch))

	entries, total, err := suite.repo.ListByOrganization(org.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(models.AuditActionCreate, entries[0].Action)
	suite.Equal(property.ID.String(), entries[0].EntityID)
}

// TestListByOrganizationNewestFirst tests ordering and pagination
func (suite *AuditRepositoryTestSuite) TestListByOrganizationNewestFirst() {
	org := suite.createOrg()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 3; i++ {
		entry := suite.newEntry(org.ID, models.AuditActionUpdate, "unit", uuid.NewString(), base.Add(time.Duration(i)*time.Minute))
		suite.NoError(suite.baseTestSuite.DB.Create(entry).Error)
	}

	entries, total, err := suite.repo.ListByOrganization(org.ID, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(entries, 2)
	suite.True(entries[0].CreatedAt.After(entries[1].CreatedAt))
}

// TestListByEntityOldestFirst tests the per-entity trail ordering
func (suite *AuditRepositoryTestSuite) TestListByEntityOldestFirst() {
	org := suite.createOrg()
	entityID := uuid.NewString()
	base := time.Now().Add(-time.Hour)

	suite.NoError(suite.baseTestSuite.DB.Create(suite.newEntry(org.ID, models.AuditActionCreate, "lease", entityID, base)).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.newEntry(org.ID, models.AuditActionUpdate, "lease", entityID, base.Add(time.Minute))).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.newEntry(org.ID, models.AuditActionUpdate, "unit", uuid.NewString(), base)).Error)

	entries, err := suite.repo.ListByEntity(org.ID, "lease", entityID)

	suite.NoError(err)
	suite.Len(entries, 2)
	suite.Equal(models.AuditActionCreate, entries[0].Action)
	suite.Equal(models.AuditActionUpdate, entries[1].Action)
}

// TestEntriesScopedToOrganization tests tenancy isolation of the log
func (suite *AuditRepositoryTestSuite) TestEntriesScopedToOrganization() {
	orgA := suite.createOrg()
	orgB := suite.createOrg()

	suite.NoError(suite.baseTestSuite.DB.Create(suite.newEntry(orgA.ID, models.AuditActionCreate, "tenant", uuid.NewString(), time.Now())).Error)

	entries, total, err := suite.repo.ListByOrganization(orgB.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(entries)
}

// TestAuditRepositoryTestSuite runs the test suite
func TestAuditRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AuditRepositoryTestSuite))
}
