package models

import "time"

// Expense represents a single expense record owned by a user.
type Expense struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      int64     `json:"user_id"`
}

// Categories is the fixed set of expense categories, in display order.
var Categories = []string{
	"Food",
	"Transportation",
	"Utilities",
	"Entertainment",
	"Other",
}

// ValidCategory reports whether category is one of the fixed set.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// CategoryTotal holds the aggregated amount for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
