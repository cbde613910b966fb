package repository

import (
	"family-finance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetRepository handles database operations for assets
type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create creates a new asset
func (r *AssetRepository) Create(asset *models.Asset) error {
	return r.db.Create(asset).Error
}

// GetByID retrieves an asset by ID within an organization
func (r *AssetRepository) GetByID(orgID, id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.First(&asset, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetByUserID retrieves all assets of a user with pagination
func (r *AssetRepository) GetByUserID(orgID, userID uuid.UUID, limit, offset int) ([]models.Asset, int64, error) {
	var assets []models.Asset
	var total int64

	query := r.db.Model(&models.Asset{}).Where("organization_id = ? AND user_id = ?", orgID, userID)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Limit(limit).Offset(offset).Order("created_at").Find(&assets).Error
	if err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

// Update updates an asset
func (r *AssetRepository) Update(asset *models.Asset) error {
	return r.db.Save(asset).Error
}

// Delete deletes an asset
func (r *AssetRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Asset{}, "id = ?", id).Error
}
