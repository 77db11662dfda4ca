package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a merchant's customer. Accounts reference customers,
// so customers are never deleted, only edited.
type Customer struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string     `gorm:"size:150;not null" json:"name"`
	TaxID     *string    `gorm:"size:14" json:"tax_id,omitempty"`
	Phone     *string    `gorm:"size:20" json:"phone,omitempty"`
	Email     *string    `gorm:"size:150" json:"email,omitempty"`
	Address   *string    `gorm:"size:150" json:"address,omitempty"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relationships
	Owner    User      `gorm:"foreignKey:OwnerID" json:"-"`
	Accounts []Account `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
