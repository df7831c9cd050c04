package models

import (
	"time"
)

// Flashcard is a question/answer pair tied to a note. Cards have no life of
// their own: deleting the note deletes them.
type Flashcard struct {
	ID        string    `gorm:"primaryKey;size:21" json:"id"`
	NoteID    string    `gorm:"not null;index;size:21" json:"noteId"`
	Question  string    `gorm:"not null;size:1000" json:"question"`
	Answer    string    `gorm:"not null;size:2000" json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
