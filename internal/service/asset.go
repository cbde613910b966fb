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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssetService handles business logic for assets
type AssetService struct {
	repo      repository.AssetRepositoryInterface
	validator *validator.Validate
}

// NewAssetService creates a new asset service
func NewAssetService(repo repository.AssetRepositoryInterface, validator *validator.Validate) *AssetService {
	return &AssetService{repo: repo, validator: validator}
}

// CreateAssetRequest represents the request to create an asset
type CreateAssetRequest struct {
	Name     string           `json:"name" validate:"required,min=1,max=100"`
	Type     models.AssetType `json:"type" validate:"required,oneof=CASH BANK_ACCOUNT INVESTMENT PROPERTY CRYPTO OTHER"`
	Currency string           `json:"currency" validate:"omitempty,len=3"`
	Balance  decimal.Decimal  `json:"balance"`
}

// UpdateAssetRequest represents the request to update an asset
type UpdateAssetRequest struct {
	Name    string           `json:"name" validate:"required,min=1,max=100"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

// AssetResponse represents the response for asset operations
type AssetResponse struct {
	ID             uuid.UUID        `json:"id"`
	OrganizationID uuid.UUID        `json:"organization_id"`
	UserID         uuid.UUID        `json:"user_id"`
	Name           string           `json:"name"`
	Type           models.AssetType `json:"type"`
	Currency       string           `json:"currency"`
	Balance        float64          `json:"balance"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

// AssetListResponse represents a paginated list of assets
type AssetListResponse struct {
	Assets   []AssetResponse `json:"assets"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new asset owned by the principal
func (s *AssetService) Create(principal *auth.Principal, req *CreateAssetRequest) (*AssetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	asset := &models.Asset{
		OrganizationID: principal.OrganizationID,
		UserID:         principal.UserID,
		Name:           req.Name,
		Type:           req.Type,
		Currency:       currency,
		Balance:        req.Balance,
	}
	if err := s.repo.Create(asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return s.toResponse(asset), nil
}

// GetByID retrieves an asset by ID within the principal's organization
func (s *AssetService) GetByID(principal *auth.Principal, id uuid.UUID) (*AssetResponse, error) {
	asset, err := s.repo.GetByID(principal.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return s.toResponse(asset), nil
}

// GetByUser retrieves the principal's assets with pagination
func (s *AssetService) GetByUser(principal *auth.Principal, page, pageSize int) (*AssetListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	assets, total, err := s.repo.GetByUserID(principal.OrganizationID, principal.UserID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	responses := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, *s.toResponse(&assets[i]))
	}

	return &AssetListResponse{
		Assets:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an asset owned by the principal
func (s *AssetService) Update(principal *auth.Principal, id uuid.UUID, req *UpdateAssetRequest) (*AssetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	asset, err := s.repo.GetByID(principal.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	if asset.UserID != principal.UserID {
		// Ownership is not disclosed across users.
		return nil, apperrors.ErrAssetNotFound
	}

	asset.Name = req.Name
	if req.Balance != nil {
		asset.Balance = *req.Balance
	}
	if err := s.repo.Update(asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return s.toResponse(asset), nil
}

// Delete deletes an asset owned by the principal
func (s *AssetService) Delete(principal *auth.Principal, id uuid.UUID) error {
	asset, err := s.repo.GetByID(principal.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssetNotFound
		}
		return fmt.Errorf("failed to get asset: %w", err)
	}
	if asset.UserID != principal.UserID {
		return apperrors.ErrAssetNotFound
	}

	if err := s.repo.Delete(asset.ID); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

func (s *AssetService) toResponse(asset *models.Asset) *AssetResponse {
	return &AssetResponse{
		ID:             asset.ID,
		OrganizationID: asset.OrganizationID,
		UserID:         asset.UserID,
		Name:           asset.Name,
		Type:           asset.Type,
		Currency:       asset.Currency,
		Balance:        asset.Balance.InexactFloat64(),
		CreatedAt:      asset.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      asset.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
