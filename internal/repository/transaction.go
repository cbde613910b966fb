package repository

import (
	"time"

	"family-finance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository handles database operations for transactions
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(txn *models.Transaction) error {
	return r.db.Create(txn).Error
}

// GetByID retrieves a transaction by ID within an organization
func (r *TransactionRepository) GetByID(orgID, id uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.First(&txn, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// GetByUserID retrieves all transactions of a user with pagination, newest first
func (r *TransactionRepository) GetByUserID(orgID, userID uuid.UUID, limit, offset int) ([]models.Transaction, int64, error) {
	var txns []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("organization_id = ? AND user_id = ?", orgID, userID)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Limit(limit).Offset(offset).Order("date DESC").Find(&txns).Error
	if err != nil {
		return nil, 0, err
	}

	return txns, total, nil
}

// GetByDateRange retrieves all transactions of a user in [start, end]
// inclusive, optionally narrowed to one asset. Read-only; the aggregator
// never writes back.
func (r *TransactionRepository) GetByDateRange(orgID, userID uuid.UUID, start, end time.Time, assetID *uuid.UUID) ([]models.Transaction, error) {
	query := r.db.
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Where("date >= ? AND date <= ?", start, end)
	if assetID != nil {
		query = query.Where("asset_id = ?", *assetID)
	}

	var txns []models.Transaction
	err := query.Order("date").Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

// Update updates a transaction
func (r *TransactionRepository) Update(txn *models.Transaction) error {
	return r.db.Save(txn).Error
}

// Delete deletes a transaction
func (r *TransactionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Transaction{}, "id = ?", id).Error
}
