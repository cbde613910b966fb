package service

import (
	"errors"
	"fmt"
	"time"

	"family-finance-backend/internal/auth"
	"family-finance-backend/internal/database/models"
	apperrors "family-finance-backend/internal/errors"
	"family-finance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionService handles business logic for ledger entries
type TransactionService struct {
	repo      repository.TransactionRepositoryInterface
	assetRepo repository.AssetRepositoryInterface
	suggester CategorySuggesterInterface
	validator *validator.Validate
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo repository.TransactionRepositoryInterface, assetRepo repository.AssetRepositoryInterface, suggester CategorySuggesterInterface, validator *validator.Validate) *TransactionService {
	return &TransactionService{
		repo:      repo,
		assetRepo: assetRepo,
		suggester: suggester,
		validator: validator,
	}
}

// CreateTransactionRequest represents the request to create a transaction
type CreateTransactionRequest struct {
	AssetID     uuid.UUID              `json:"asset_id" validate:"required"`
	Type        models.TransactionType `json:"type" validate:"required,oneof=INCOME EXPENSE TRANSFER"`
	Category    string                 `json:"category" validate:"max=100"`
	Amount      decimal.Decimal        `json:"amount"`
	Currency    string                 `json:"currency" validate:"omitempty,len=3"`
	Date        time.Time              `json:"date" validate:"required"`
	Description string                 `json:"description" validate:"max=500"`
}

// UpdateTransactionRequest represents the request to update a transaction
type UpdateTransactionRequest struct {
	Category    string           `json:"category" validate:"max=100"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Description string           `json:"description" validate:"max=500"`
}

// TransactionResponse represents the response for transaction operations
type TransactionResponse struct {
	ID             uuid.UUID              `json:"id"`
	OrganizationID uuid.UUID              `json:"organization_id"`
	UserID         uuid.UUID              `json:"user_id"`
	AssetID        uuid.UUID              `json:"asset_id"`
	Type           models.TransactionType `json:"type"`
	Category       string                 `json:"category"`
	Amount         float64                `json:"amount"`
	Currency       string                 `json:"currency"`
	Date           string                 `json:"date"`
	Description    string                 `json:"description,omitempty"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// Create appends a ledger entry owned by the principal
func (s *TransactionService) Create(principal *auth.Principal, req *CreateTransactionRequest) (*TransactionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if req.Amount.IsNegative() {
		return nil, &apperrors.ValidationError{Field: "amount", Message: "amount must be non-negative"}
	}

	// The referenced asset must exist and belong to the caller.
	asset, err := s.assetRepo.GetByID(principal.OrganizationID, req.AssetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to verify asset: %w", err)
	}
	if asset.UserID != principal.UserID {
		return nil, apperrors.ErrAssetNotFound
	}

	category := req.Category
	if category == "" {
		category = s.suggester.Suggest(req.Description)
	}
	currency := req.Currency
	if currency == "" {
		currency = asset.Currency
	}

	txn := &models.Transaction{
		OrganizationID: principal.OrganizationID,
		UserID:         principal.UserID,
		AssetID:        req.AssetID,
		Type:           req.Type,
		Category:       category,
		Amount:         req.Amount,
		Currency:       currency,
		Date:           req.Date,
		Description:    req.Description,
	}
	if err := s.repo.Create(txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return s.toResponse(txn), nil
}

// GetByID retrieves a transaction owned by the principal
func (s *TransactionService) GetByID(principal *auth.Principal, id uuid.UUID) (*TransactionResponse, error) {
	txn, err := s.loadOwned(principal, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(txn), nil
}

// GetByUser retrieves the principal's transactions with pagination
func (s *TransactionService) GetByUser(principal *auth.Principal, page, pageSize int) (*TransactionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	txns, total, err := s.repo.GetByUserID(principal.OrganizationID, principal.UserID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	responses := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		responses = append(responses, *s.toResponse(&txns[i]))
	}

	return &TransactionListResponse{
		Transactions: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// Update updates a transaction owned by the principal
func (s *TransactionService) Update(principal *auth.Principal, id uuid.UUID, req *UpdateTransactionRequest) (*TransactionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		return nil, &apperrors.ValidationError{Field: "amount", Message: "amount must be non-negative"}
	}

	txn, err := s.loadOwned(principal, id)
	if err != nil {
		return nil, err
	}

	if req.Category != "" {
		txn.Category = req.Category
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Description != "" {
		txn.Description = req.Description
	}
	if err := s.repo.Update(txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return s.toResponse(txn), nil
}

// Delete deletes a transaction owned by the principal
func (s *TransactionService) Delete(principal *auth.Principal, id uuid.UUID) error {
	txn, err := s.loadOwned(principal, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(txn.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

func (s *TransactionService) loadOwned(principal *auth.Principal, id uuid.UUID) (*models.Transaction, error) {
	txn, err := s.repo.GetByID(principal.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if txn.UserID != principal.UserID {
		// Other users' entries are not disclosed.
		return nil, apperrors.ErrTransactionNotFound
	}
	return txn, nil
}

func (s *TransactionService) toResponse(txn *models.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:             txn.ID,
		OrganizationID: txn.OrganizationID,
		UserID:         txn.UserID,
		AssetID:        txn.AssetID,
		Type:           txn.Type,
		Category:       txn.Category,
		Amount:         txn.Amount.InexactFloat64(),
		Currency:       txn.Currency,
		Date:           txn.Date.Format("2006-01-02"),
		Description:    txn.Description,
		CreatedAt:      txn.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      txn.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
