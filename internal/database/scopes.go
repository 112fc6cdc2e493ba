package database

import (
	"gorm.io/gorm"
)

// Paginate applies limit/skip pagination to a GORM query.
func Paginate(limit, skip int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(skip).Limit(limit)
	}
}
