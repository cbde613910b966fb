package models

// Organization represents the root entity for multi-tenancy.
// Every user, family, asset and transaction is scoped to exactly one organization.
type Organization struct {
	BaseModel
	Name         string   `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	PlanTier     PlanTier `json:"plan_tier" gorm:"type:varchar(20);not null;default:'STARTER'"`
	BillingEmail string   `json:"billing_email" gorm:"not null;size:255" validate:"required,email,max=255"`

	// Relationships
	Users    []User   `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Families []Family `json:"families,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Assets   []Asset  `json:"assets,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
