package database

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to records stamped with the given owner. Every
// domain read and write goes through this scope so that visibility never
// depends on per-record checks.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
