package repository

import (
	"family-finance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID within an organization
func (r *UserRepository) GetByID(orgID, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email within an organization
func (r *UserRepository) GetByEmail(orgID uuid.UUID, email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "organization_id = ? AND email = ?", orgID, email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByOrganizationID retrieves all users for an organization with pagination
func (r *UserRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	// Get total count
	if err := r.db.Model(&models.User{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Where("organization_id = ?", orgID).Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetByFamilyID retrieves the derived member list of a family
func (r *UserRepository) GetByFamilyID(familyID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("family_id = ?", familyID).Order("created_at").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// CountByFamilyIDExcluding counts family members other than the given user
func (r *UserRepository) CountByFamilyIDExcluding(familyID, excludedUserID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("family_id = ? AND id <> ?", familyID, excludedUserID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// AssignFamily sets the user's family_id, but only while it is still null.
// A zero RowsAffected means another session affiliated the user concurrently;
// that is surfaced as ErrRecordNotFound so callers can re-check state.
func (r *UserRepository) AssignFamily(userID, familyID uuid.UUID) error {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND family_id IS NULL", userID).
		Update("family_id", familyID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearFamily nulls the user's family_id
func (r *UserRepository) ClearFamily(userID uuid.UUID) error {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND family_id IS NOT NULL", userID).
		Update("family_id", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
