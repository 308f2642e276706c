package entity

import (
	"time"
)

// Tag labels recipes and belongs to exactly one user.
type Tag struct {
	ID     int64
	Name   string
	UserID string
}

// Ingredient belongs to exactly one user.
type Ingredient struct {
	ID     int64
	Name   string
	UserID string
}

// Recipe belongs to exactly one user. ImageURL is set once an image
// has been uploaded to object storage.
type Recipe struct {
	ID          int64
	Title       string
	TimeMinutes int
	Price       float64
	ImageURL    string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
