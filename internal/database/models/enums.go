package models

// PlanTier defines the subscription tier of an organization
type PlanTier string

const (
	PlanTierStarter    PlanTier = "STARTER"
	PlanTierFamily     PlanTier = "FAMILY"
	PlanTierPremium    PlanTier = "PREMIUM"
	PlanTierEnterprise PlanTier = "ENTERPRISE"
)

// UserRole defines the role of a user within its organization
type UserRole string

const (
	UserRoleOwner  UserRole = "OWNER"
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMember UserRole = "MEMBER"
	UserRoleViewer UserRole = "VIEWER"
)

// AssetType defines the kinds of financial holdings
type AssetType string

const (
	AssetTypeCash        AssetType = "CASH"
	AssetTypeBankAccount AssetType = "BANK_ACCOUNT"
	AssetTypeInvestment  AssetType = "INVESTMENT"
	AssetTypeProperty    AssetType = "PROPERTY"
	AssetTypeCrypto      AssetType = "CRYPTO"
	AssetTypeOther       AssetType = "OTHER"
)

// TransactionType defines the kinds of ledger entries
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "INCOME"
	TransactionTypeExpense  TransactionType = "EXPENSE"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// IsValid checks if the PlanTier is valid
func (p PlanTier) IsValid() bool {
	switch p {
	case PlanTierStarter, PlanTierFamily, PlanTierPremium, PlanTierEnterprise:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleAdmin, UserRoleMember, UserRoleViewer:
		return true
	}
	return false
}

// IsValid checks if the AssetType is valid
func (a AssetType) IsValid() bool {
	switch a {
	case AssetTypeCash, AssetTypeBankAccount, AssetTypeInvestment, AssetTypeProperty, AssetTypeCrypto, AssetTypeOther:
		return true
	}
	return false
}

// IsValid checks if the TransactionType is valid
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}
