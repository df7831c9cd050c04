package models

import (
	"time"
)

// Category groups notes under a name and an optional display color.
// Deleting a category does not delete its notes; their reference is cleared.
type Category struct {
	ID        string    `gorm:"primaryKey;size:21" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Color     *string   `gorm:"size:30" json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
