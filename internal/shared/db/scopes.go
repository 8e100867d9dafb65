package db

import "gorm.io/gorm"

// Paginate applies offset/limit. A non-positive limit leaves the query unbounded.
func Paginate(offset, limit int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return tx
		}
		if offset < 0 {
			offset = 0
		}
		return tx.Offset(offset).Limit(limit)
	}
}

// NewestFirst orders by creation time, newest first, with id as tie breaker.
func NewestFirst() func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC").Order("id DESC")
	}
}

// OldestFirst orders by creation time ascending, with id as tie breaker.
func OldestFirst() func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at ASC").Order("id ASC")
	}
}
