package testutils

import (
	"fmt"
	"time"

	"family-finance-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Names are unique; derive from the id to avoid cross-test conflicts
		Name:         "Test Organization " + id.String()[:8],
		PlanTier:     models.PlanTierFamily,
		BillingEmail: "billing@test.com",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithPlanTier sets a custom plan tier for the organization
func (f *OrganizationFactory) WithPlanTier(tier models.PlanTier) *models.Organization {
	org := f.Create()
	org.PlanTier = tier
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:    uuid.New(),
		FamilyID:          nil,
		Email:             fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		DisplayName:       "Test User",
		Role:              models.UserRoleMember,
		PreferredCurrency: "USD",
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = orgID
	return user
}

// WithFamily sets the family ID for the user
func (f *UserFactory) WithFamily(familyID uuid.UUID) *models.User {
	user := f.Create()
	user.FamilyID = &familyID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// FamilyFactory provides methods to create test Family data
type FamilyFactory struct{}

// NewFamilyFactory creates a new FamilyFactory
func NewFamilyFactory() *FamilyFactory {
	return &FamilyFactory{}
}

// Create creates a test Family with default values
func (f *FamilyFactory) Create() *models.Family {
	id := uuid.New()
	return &models.Family{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Test Family",
		Description:    "A test family",
		// Codes are unique per organization; derive from the id
		InviteCode:  inviteCodeFromID(id),
		CreatedByID: uuid.New(),
	}
}

// WithOrganization sets the organization ID for the family
func (f *FamilyFactory) WithOrganization(orgID uuid.UUID) *models.Family {
	family := f.Create()
	family.OrganizationID = orgID
	return family
}

// WithInviteCode sets a custom invite code for the family
func (f *FamilyFactory) WithInviteCode(code string) *models.Family {
	family := f.Create()
	family.InviteCode = code
	return family
}

// WithCreator sets the creating user for the family
func (f *FamilyFactory) WithCreator(userID uuid.UUID) *models.Family {
	family := f.Create()
	family.CreatedByID = userID
	return family
}

// inviteCodeFromID derives a 6-char uppercase alphanumeric code from a UUID
func inviteCodeFromID(id uuid.UUID) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	code := make([]byte, 6)
	for i := range code {
		code[i] = alphabet[int(id[i])%len(alphabet)]
	}
	return string(code)
}

// AssetFactory provides methods to create test Asset data
type AssetFactory struct{}

// NewAssetFactory creates a new AssetFactory
func NewAssetFactory() *AssetFactory {
	return &AssetFactory{}
}

// Create creates a test Asset with default values
func (f *AssetFactory) Create() *models.Asset {
	return &models.Asset{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		Name:           "Test Checking Account",
		Type:           models.AssetTypeBankAccount,
		Currency:       "USD",
		Balance:        decimal.NewFromInt(1000),
	}
}

// WithOwner sets the organization and user for the asset
func (f *AssetFactory) WithOwner(orgID, userID uuid.UUID) *models.Asset {
	asset := f.Create()
	asset.OrganizationID = orgID
	asset.UserID = userID
	return asset
}

// WithType sets a custom type for the asset
func (f *AssetFactory) WithType(assetType models.AssetType) *models.Asset {
	asset := f.Create()
	asset.Type = assetType
	return asset
}

// WithBalance sets a custom balance for the asset
func (f *AssetFactory) WithBalance(balance decimal.Decimal) *models.Asset {
	asset := f.Create()
	asset.Balance = balance
	return asset
}

// TransactionFactory provides methods to create test Transaction data
type TransactionFactory struct{}

// NewTransactionFactory creates a new TransactionFactory
func NewTransactionFactory() *TransactionFactory {
	return &TransactionFactory{}
}

// Create creates a test Transaction with default values
func (f *TransactionFactory) Create() *models.Transaction {
	return &models.Transaction{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		AssetID:        uuid.New(),
		Type:           models.TransactionTypeExpense,
		Category:       "Groceries",
		Amount:         decimal.NewFromInt(50),
		Currency:       "USD",
		Date:           time.Now(),
		Description:    "Weekly groceries",
	}
}

// WithOwner sets the organization, user and asset for the transaction
func (f *TransactionFactory) WithOwner(orgID, userID, assetID uuid.UUID) *models.Transaction {
	txn := f.Create()
	txn.OrganizationID = orgID
	txn.UserID = userID
	txn.AssetID = assetID
	return txn
}

// WithType sets a custom type for the transaction
func (f *TransactionFactory) WithType(txnType models.TransactionType) *models.Transaction {
	txn := f.Create()
	txn.Type = txnType
	return txn
}

// WithAmount sets a custom amount for the transaction
func (f *TransactionFactory) WithAmount(amount decimal.Decimal) *models.Transaction {
	txn := f.Create()
	txn.Amount = amount
	return txn
}

// WithDate sets a custom date for the transaction
func (f *TransactionFactory) WithDate(date time.Time) *models.Transaction {
	txn := f.Create()
	txn.Date = date
	return txn
}

// WithCategory sets a custom category for the transaction
func (f *TransactionFactory) WithCategory(category string) *models.Transaction {
	txn := f.Create()
	txn.Category = category
	return txn
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Family       *FamilyFactory
	Asset        *AssetFactory
	Transaction  *TransactionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		Family:       NewFamilyFactory(),
		Asset:        NewAssetFactory(),
		Transaction:  NewTransactionFactory(),
	}
}

// CreateAffiliatedFamily creates an organization, a family inside it, and a
// user affiliated with that family as its creator.
func (fs *FactorySet) CreateAffiliatedFamily() (*models.Organization, *models.Family, *models.User) {
	org := fs.Organization.Create()

	user := fs.User.WithOrganization(org.ID)

	family := fs.Family.WithOrganization(org.ID)
	family.CreatedByID = user.ID
	user.FamilyID = &family.ID

	return org, family, user
}
