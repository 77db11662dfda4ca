package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy returns a GORM scope filtering rows by the owning merchant.
// Applied to every account/customer query so a row owned by another
// merchant is indistinguishable from a missing one.
func OwnedBy(ownerID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID == uuid.Nil {
			// Fail-safe: no owner means no rows, never all rows.
			return db.Where("1 = 0")
		}
		return db.Where("owner_id = ?", ownerID)
	}
}

// ActiveAccounts filters out soft-deleted accounts
func ActiveAccounts(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// DeletedAccounts keeps only soft-deleted accounts
func DeletedAccounts(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", true)
}
