package service

import (
	"errors"
	"fmt"

	"family-finance-backend/internal/auth"
	"family-finance-backend/internal/database/models"
	apperrors "family-finance-backend/internal/errors"
	"family-finance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, orgRepo: orgRepo, validator: validator}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	OrganizationID    uuid.UUID       `json:"organization_id" validate:"required"`
	Email             string          `json:"email" validate:"required,email,max=255"`
	DisplayName       string          `json:"display_name" validate:"required,max=100"`
	Role              models.UserRole `json:"role" validate:"omitempty,oneof=OWNER ADMIN MEMBER VIEWER"`
	PreferredCurrency string          `json:"preferred_currency" validate:"omitempty,len=3"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID                uuid.UUID       `json:"id"`
	OrganizationID    uuid.UUID       `json:"organization_id"`
	FamilyID          *uuid.UUID      `json:"family_id,omitempty"`
	Email             string          `json:"email"`
	DisplayName       string          `json:"display_name"`
	Role              models.UserRole `json:"role"`
	PreferredCurrency string          `json:"preferred_currency"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new user within an organization
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	// Validate organization exists
	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	// Check if user with same email exists in the organization
	existing, err := s.repo.GetByEmail(req.OrganizationID, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleMember
	}
	currency := req.PreferredCurrency
	if currency == "" {
		currency = "USD"
	}

	user := &models.User{
		OrganizationID:    req.OrganizationID,
		Email:             req.Email,
		DisplayName:       req.DisplayName,
		Role:              role,
		PreferredCurrency: currency,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByID retrieves a user by ID within the principal's organization
func (s *UserService) GetByID(principal *auth.Principal, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(principal.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByOrganization retrieves users of the principal's organization with pagination
func (s *UserService) GetByOrganization(principal *auth.Principal, page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	users, total, err := s.repo.GetByOrganizationID(principal.OrganizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *s.toResponse(&users[i]))
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:                user.ID,
		OrganizationID:    user.OrganizationID,
		FamilyID:          user.FamilyID,
		Email:             user.Email,
		DisplayName:       user.DisplayName,
		Role:              user.Role,
		PreferredCurrency: user.PreferredCurrency,
		CreatedAt:         user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:         user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
