package models

import (
	"time"
)

// Note represents a single study note. Summary and AudioURL are filled in
// by the AI generation endpoints; CategoryID is a lookup-only reference.
type Note struct {
	ID         string    `gorm:"primaryKey;size:21" json:"id"`
	Title      string    `gorm:"not null;size:200" json:"title"`
	Content    string    `gorm:"not null" json:"content"`
	Summary    *string   `json:"summary"`
	AudioURL   *string   `json:"audioUrl"`
	CategoryID *string   `gorm:"index;size:21" json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
