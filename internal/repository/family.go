package repository

import (
	"family-finance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyRepository handles database operations for families
type FamilyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository creates a new family repository
func NewFamilyRepository(db *gorm.DB) *FamilyRepository {
	return &FamilyRepository{db: db}
}

// Create creates a new family. The unique index on
// (organization_id, invite_code) turns a concurrent claim of the same code
// into a constraint violation the caller can retry on.
func (r *FamilyRepository) Create(family *models.Family) error {
	return r.db.Create(family).Error
}

// GetByID retrieves a family by ID
func (r *FamilyRepository) GetByID(id uuid.UUID) (*models.Family, error) {
	var family models.Family
	err := r.db.First(&family, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &family, nil
}

// GetByInviteCode retrieves a family by invite code within an organization.
// Codes are scoped: a code that only exists in another organization is a
// plain not-found here.
func (r *FamilyRepository) GetByInviteCode(orgID uuid.UUID, inviteCode string) (*models.Family, error) {
	var family models.Family
	err := r.db.First(&family, "organization_id = ? AND invite_code = ?", orgID, inviteCode).Error
	if err != nil {
		return nil, err
	}
	return &family, nil
}

// Delete deletes a family
func (r *FamilyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Family{}, "id = ?", id).Error
}
