package models

import "time"

// CategoryDB represents a category record in the database
type CategoryDB struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CategoryWithCount is a category row joined with its artwork cardinality.
type CategoryWithCount struct {
	CategoryDB
	ArtworkCount int64 `db:"artwork_count"`
}

// CategoryItem is the list payload for a category.
type CategoryItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	ArtworkCount int64   `json:"artwork_count"`
}

// CategoryResponse is the payload returned after creating a category.
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
