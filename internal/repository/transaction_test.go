//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"family-finance-backend/internal/database/models"
	"family-finance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositoryTestSuite tests the TransactionRepository against Postgres
type TransactionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TransactionRepository
	orgRepo       *OrganizationRepository
	userRepo      *UserRepository
	assetRepo     *AssetRepository
	factories     *testutils.FactorySet

	org   *models.Organization
	user  *models.User
	asset *models.Asset
}

// SetupSuite runs before all tests in the suite
func (suite *TransactionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTransactionRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.assetRepo = NewAssetRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TransactionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds an owner chain
func (suite *TransactionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(suite.org))

	suite.user = suite.factories.User.WithOrganization(suite.org.ID)
	suite.Require().NoError(suite.userRepo.Create(suite.user))

	suite.asset = suite.factories.Asset.WithOwner(suite.org.ID, suite.user.ID)
	suite.Require().NoError(suite.assetRepo.Create(suite.asset))
}

// TearDownTest runs after each test
func (suite *TransactionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TransactionRepositoryTestSuite) createTransaction(date time.Time, amount int64) *models.Transaction {
	txn := suite.factories.Transaction.WithOwner(suite.org.ID, suite.user.ID, suite.asset.ID)
	txn.Date = date
	txn.Amount = decimal.NewFromInt(amount)
	suite.Require().NoError(suite.repo.Create(txn))
	return txn
}

// TestGetByDateRangeInclusiveBounds tests that both boundary days are included
func (suite *TransactionRepositoryTestSuite) TestGetByDateRangeInclusiveBounds() {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	onStart := suite.createTransaction(start, 10)
	onEnd := suite.createTransaction(end, 20)
	suite.createTransaction(start.AddDate(0, 0, -1), 30) // before the range
	suite.createTransaction(end.AddDate(0, 0, 1), 40)    // after the range

	txns, err := suite.repo.GetByDateRange(suite.org.ID, suite.user.ID, start, end, nil)
	suite.NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal(onStart.ID, txns[0].ID)
	suite.Equal(onEnd.ID, txns[1].ID)
}

// TestGetByDateRangeAssetFilter tests narrowing to one asset
func (suite *TransactionRepositoryTestSuite) TestGetByDateRangeAssetFilter() {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	mid := start.AddDate(0, 0, 10)

	inAsset := suite.createTransaction(mid, 10)

	otherAsset := suite.factories.Asset.WithOwner(suite.org.ID, suite.user.ID)
	suite.Require().NoError(suite.assetRepo.Create(otherAsset))
	other := suite.factories.Transaction.WithOwner(suite.org.ID, suite.user.ID, otherAsset.ID)
	other.Date = mid
	suite.Require().NoError(suite.repo.Create(other))

	txns, err := suite.repo.GetByDateRange(suite.org.ID, suite.user.ID, start, end, &suite.asset.ID)
	suite.NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal(inAsset.ID, txns[0].ID)

	txns, err = suite.repo.GetByDateRange(suite.org.ID, suite.user.ID, start, end, nil)
	suite.NoError(err)
	suite.Len(txns, 2)
}

// TestGetByDateRangeScopedToUser tests that other users' rows never leak in
func (suite *TransactionRepositoryTestSuite) TestGetByDateRangeScopedToUser() {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	mid := start.AddDate(0, 0, 10)

	mine := suite.createTransaction(mid, 10)

	otherUser := suite.factories.User.WithOrganization(suite.org.ID)
	suite.Require().NoError(suite.userRepo.Create(otherUser))
	theirs := suite.factories.Transaction.WithOwner(suite.org.ID, otherUser.ID, suite.asset.ID)
	theirs.Date = mid
	suite.Require().NoError(suite.repo.Create(theirs))

	txns, err := suite.repo.GetByDateRange(suite.org.ID, suite.user.ID, start, end, nil)
	suite.NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal(mine.ID, txns[0].ID)
}

// TestGetByUserIDPagination tests the paginated listing, newest first
func (suite *TransactionRepositoryTestSuite) TestGetByUserIDPagination() {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		suite.createTransaction(base.AddDate(0, 0, i), int64(10*(i+1)))
	}

	txns, total, err := suite.repo.GetByUserID(suite.org.ID, suite.user.ID, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Require().Len(txns, 2)
	suite.True(txns[0].Date.After(txns[1].Date))
}

// TestDecimalRoundTrip tests that amounts survive storage without float drift
func (suite *TransactionRepositoryTestSuite) TestDecimalRoundTrip() {
	txn := suite.factories.Transaction.WithOwner(suite.org.ID, suite.user.ID, suite.asset.ID)
	txn.Amount = decimal.RequireFromString("19.99")
	suite.Require().NoError(suite.repo.Create(txn))

	retrieved, err := suite.repo.GetByID(suite.org.ID, txn.ID)
	suite.NoError(err)
	suite.True(retrieved.Amount.Equal(decimal.RequireFromString("19.99")))
	suite.NotEqual(uuid.Nil, retrieved.ID)
}

// TestTransactionRepositoryTestSuite runs the test suite
func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}
