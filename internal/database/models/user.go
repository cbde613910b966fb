package models

import (
	"github.com/google/uuid"
)

// User represents a principal within an organization.
// FamilyID is a weak reference: null means the user is unaffiliated, otherwise
// it must point at a family inside the same organization. Family membership is
// derived from this column, never stored on the family side.
type User struct {
	BaseModel
	OrganizationID    uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_users_org_email"`
	FamilyID          *uuid.UUID `json:"family_id,omitempty" gorm:"type:uuid;index"`
	Email             string     `json:"email" gorm:"uniqueIndex:idx_users_org_email;not null;size:255" validate:"required,email,max=255"`
	DisplayName       string     `json:"display_name" gorm:"not null;size:100" validate:"required,max=100"`
	Role              UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'"`
	PreferredCurrency string     `json:"preferred_currency" gorm:"size:3;not null;default:'USD'" validate:"omitempty,len=3"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsInFamily reports whether the user currently belongs to a family
func (u *User) IsInFamily() bool {
	return u.FamilyID != nil && *u.FamilyID != uuid.Nil
}
