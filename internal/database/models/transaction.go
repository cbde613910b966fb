package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a dated, currency-tagged ledger entry.
// Amount is always non-negative; the Type column carries the direction.
// TRANSFER entries move money between assets and count as neither income nor
// expense in analytics. Rows are immutable except for explicit update/delete
// by their owner — aggregation never mutates them.
type Transaction struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	AssetID        uuid.UUID       `json:"asset_id" gorm:"type:uuid;not null;index"`
	Type           TransactionType `json:"type" gorm:"type:varchar(20);not null"`
	Category       string          `json:"category" gorm:"size:100"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:numeric(20,2);not null"`
	Currency       string          `json:"currency" gorm:"size:3;not null;default:'USD'" validate:"omitempty,len=3"`
	Date           time.Time       `json:"date" gorm:"not null;index"`
	Description    string          `json:"description" gorm:"size:500" validate:"max=500"`
}

// TableName returns the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
