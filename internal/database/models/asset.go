package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset represents a financial holding owned by a user
type Asset struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Name           string          `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Type           AssetType       `json:"type" gorm:"type:varchar(20);not null"`
	Currency       string          `json:"currency" gorm:"size:3;not null;default:'USD'" validate:"omitempty,len=3"`
	Balance        decimal.Decimal `json:"balance" gorm:"type:numeric(20,2);not null;default:0"`
}

// TableName returns the table name for Asset
func (Asset) TableName() string {
	return "assets"
}
