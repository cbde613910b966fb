package repository

import (
	"time"

	"family-finance-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(orgID, id uuid.UUID) (*models.User, error)
	GetByEmail(orgID uuid.UUID, email string) (*models.User, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	GetByFamilyID(familyID uuid.UUID) ([]models.User, error)
	CountByFamilyIDExcluding(familyID, excludedUserID uuid.UUID) (int64, error)
	AssignFamily(userID, familyID uuid.UUID) error
	ClearFamily(userID uuid.UUID) error
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// FamilyRepositoryInterface defines the interface for family repository operations
type FamilyRepositoryInterface interface {
	Create(family *models.Family) error
	GetByID(id uuid.UUID) (*models.Family, error)
	GetByInviteCode(orgID uuid.UUID, inviteCode string) (*models.Family, error)
	Delete(id uuid.UUID) error
}

// AssetRepositoryInterface defines the interface for asset repository operations
type AssetRepositoryInterface interface {
	Create(asset *models.Asset) error
	GetByID(orgID, id uuid.UUID) (*models.Asset, error)
	GetByUserID(orgID, userID uuid.UUID, limit, offset int) ([]models.Asset, int64, error)
	Update(asset *models.Asset) error
	Delete(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the interface for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(txn *models.Transaction) error
	GetByID(orgID, id uuid.UUID) (*models.Transaction, error)
	GetByUserID(orgID, userID uuid.UUID, limit, offset int) ([]models.Transaction, int64, error)
	GetByDateRange(orgID, userID uuid.UUID, start, end time.Time, assetID *uuid.UUID) ([]models.Transaction, error)
	Update(txn *models.Transaction) error
	Delete(id uuid.UUID) error
}
