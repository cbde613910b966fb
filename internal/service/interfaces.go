package service

import (
	"family-finance-backend/internal/auth"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CodeGenerator produces candidate invite codes; uniqueness is checked by the caller
type CodeGenerator interface {
	Generate() (string, error)
}

// FamilyServiceInterface defines the interface for the family lifecycle manager
type FamilyServiceInterface interface {
	Create(principal *auth.Principal, req *CreateFamilyRequest) (*FamilyResponse, error)
	Join(principal *auth.Principal, req *JoinFamilyRequest) (*FamilyResponse, error)
	Leave(principal *auth.Principal) error
	GetCurrent(principal *auth.Principal) (*FamilyResponse, error)
}

// AnalyticsServiceInterface defines the interface for the analytics aggregator
type AnalyticsServiceInterface interface {
	Summarize(principal *auth.Principal, req *SummaryRequest) (*SummaryResponse, error)
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(principal *auth.Principal, id uuid.UUID) (*UserResponse, error)
	GetByOrganization(principal *auth.Principal, page, pageSize int) (*UserListResponse, error)
}

// AssetServiceInterface defines the interface for asset service
type AssetServiceInterface interface {
	Create(principal *auth.Principal, req *CreateAssetRequest) (*AssetResponse, error)
	GetByID(principal *auth.Principal, id uuid.UUID) (*AssetResponse, error)
	GetByUser(principal *auth.Principal, page, pageSize int) (*AssetListResponse, error)
	Update(principal *auth.Principal, id uuid.UUID, req *UpdateAssetRequest) (*AssetResponse, error)
	Delete(principal *auth.Principal, id uuid.UUID) error
}

// TransactionServiceInterface defines the interface for transaction service
type TransactionServiceInterface interface {
	Create(principal *auth.Principal, req *CreateTransactionRequest) (*TransactionResponse, error)
	GetByID(principal *auth.Principal, id uuid.UUID) (*TransactionResponse, error)
	GetByUser(principal *auth.Principal, page, pageSize int) (*TransactionListResponse, error)
	Update(principal *auth.Principal, id uuid.UUID, req *UpdateTransactionRequest) (*TransactionResponse, error)
	Delete(principal *auth.Principal, id uuid.UUID) error
}

// CategorySuggesterInterface stands in for the external receipt classifier.
// The real classifier is a hosted model; this core only ever talks to the
// interface and ships a static keyword implementation.
type CategorySuggesterInterface interface {
	Suggest(description string) string
}
