//go:build integration
// +build integration

package repository

import (
	"testing"

	"family-finance-backend/internal/database/models"
	"family-finance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// FamilyRepositoryTestSuite tests the FamilyRepository against Postgres
type FamilyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FamilyRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *FamilyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewFamilyRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *FamilyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *FamilyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *FamilyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *FamilyRepositoryTestSuite) createOrganization() *models.Organization {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(org))
	return org
}

// TestCreateAndGetByID tests the basic round trip
func (suite *FamilyRepositoryTestSuite) TestCreateAndGetByID() {
	org := suite.createOrganization()
	family := suite.factories.Family.WithOrganization(org.ID)

	err := suite.repo.Create(family)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, family.ID)

	retrieved, err := suite.repo.GetByID(family.ID)
	suite.NoError(err)
	suite.Equal(family.Name, retrieved.Name)
	suite.Equal(family.InviteCode, retrieved.InviteCode)
	suite.Equal(org.ID, retrieved.OrganizationID)
}

// TestGetByInviteCodeScoped tests that lookups never cross organizations
func (suite *FamilyRepositoryTestSuite) TestGetByInviteCodeScoped() {
	orgA := suite.createOrganization()
	orgB := suite.createOrganization()

	familyA := suite.factories.Family.WithOrganization(orgA.ID)
	familyA.InviteCode = "SHARED"
	suite.Require().NoError(suite.repo.Create(familyA))

	familyB := suite.factories.Family.WithOrganization(orgB.ID)
	familyB.InviteCode = "SHARED"
	suite.Require().NoError(suite.repo.Create(familyB))

	// Each organization resolves the shared code to its own family
	retrieved, err := suite.repo.GetByInviteCode(orgA.ID, "SHARED")
	suite.NoError(err)
	suite.Equal(familyA.ID, retrieved.ID)

	retrieved, err = suite.repo.GetByInviteCode(orgB.ID, "SHARED")
	suite.NoError(err)
	suite.Equal(familyB.ID, retrieved.ID)
}

// TestGetByInviteCodeForeignTenant tests that another tenant's code is a plain not-found
func (suite *FamilyRepositoryTestSuite) TestGetByInviteCodeForeignTenant() {
	orgA := suite.createOrganization()
	orgB := suite.createOrganization()

	familyB := suite.factories.Family.WithOrganization(orgB.ID)
	familyB.InviteCode = "ONLYIN"
	suite.Require().NoError(suite.repo.Create(familyB))

	_, err := suite.repo.GetByInviteCode(orgA.ID, "ONLYIN")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDuplicateInviteCodeSameOrganization tests the composite unique index
func (suite *FamilyRepositoryTestSuite) TestDuplicateInviteCodeSameOrganization() {
	org := suite.createOrganization()

	family1 := suite.factories.Family.WithOrganization(org.ID)
	family1.InviteCode = "SAME00"
	suite.Require().NoError(suite.repo.Create(family1))

	family2 := suite.factories.Family.WithOrganization(org.ID)
	family2.InviteCode = "SAME00"

	err := suite.repo.Create(family2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestDelete tests deleting a family
func (suite *FamilyRepositoryTestSuite) TestDelete() {
	org := suite.createOrganization()
	family := suite.factories.Family.WithOrganization(org.ID)
	suite.Require().NoError(suite.repo.Create(family))

	err := suite.repo.Delete(family.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(family.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestFamilyRepositoryTestSuite runs the test suite
func TestFamilyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FamilyRepositoryTestSuite))
}
