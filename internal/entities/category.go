package entities

import "time"

// Category is a shared, user-independent label for classifying transactions.
// (title, type) pairs are unique.
type Category struct {
	ID        string          `json:"id"` // UUID
	Title     string          `json:"title"`
	Type      TransactionType `json:"type"`
	Icon      *string         `json:"icon,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
