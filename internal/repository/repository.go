package repository

// Repository provides persistence operations for neighborhoods, venues
// and events. Bounding-box listings fetch candidate rows and apply the
// geo predicates in memory, then paginate, since coordinates are stored
// as JSON columns.

import (
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// paginate applies skip/limit to rows that were filtered in memory.
func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
