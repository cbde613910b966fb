package models

import (
	"github.com/google/uuid"
)

// Family groups users of one organization behind a shared invite code.
// The invite code is unique per organization, not globally: the same code may
// exist in two tenants without ever matching across them. Members are the
// users whose family_id equals this row's id — a derived query, not a stored
// collection.
type Family struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_families_org_invite_code"`
	Name           string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description    string    `json:"description" gorm:"size:500" validate:"max=500"`
	InviteCode     string    `json:"invite_code" gorm:"uniqueIndex:idx_families_org_invite_code;not null;size:6"`
	CreatedByID    uuid.UUID `json:"created_by_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Family
func (Family) TableName() string {
	return "families"
}

// IsCreator reports whether the given user created this family
func (f *Family) IsCreator(userID uuid.UUID) bool {
	return f.CreatedByID == userID
}
