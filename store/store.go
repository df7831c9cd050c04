package store

import (
	"context"
	"errors"

	"github.com/diogosalvadorb/Recallify/models"
)

var (
	// ErrNoteNotFound is returned when an operation references a note that
	// does not exist, e.g. creating a flashcard against a deleted note.
	ErrNoteNotFound = errors.New("note not found")

	// ErrCategoryNotFound is returned by UpdateCategory when the update
	// matched zero records.
	ErrCategoryNotFound = errors.New("category not found")
)

// NoteUpdate is a partial note update. Nil fields are left untouched; a
// pointer to the empty string clears the field.
type NoteUpdate struct {
	Title      *string
	Content    *string
	Summary    *string
	AudioURL   *string
	CategoryID *string
}

// CategoryUpdate is a partial category update.
type CategoryUpdate struct {
	Name  *string
	Color *string
}

// FlashcardUpdate is a partial flashcard update.
type FlashcardUpdate struct {
	Question *string
	Answer   *string
}

// Store is the persistence contract for notes, categories and flashcards.
// Lookups for missing records return (nil, nil); deletes report whether a
// record was removed. Multi-record side effects (cascade delete of
// flashcards, category nullify on notes) are independent statements, not
// one transaction.
type Store interface {
	ListNotes(ctx context.Context, categoryID string) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (*models.Note, error)
	CreateNote(ctx context.Context, note *models.Note) error
	UpdateNote(ctx context.Context, id string, upd NoteUpdate) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) (bool, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, id string, upd CategoryUpdate) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)

	ListFlashcards(ctx context.Context) ([]models.Flashcard, error)
	ListFlashcardsByNote(ctx context.Context, noteID string) ([]models.Flashcard, error)
	GetFlashcard(ctx context.Context, id string) (*models.Flashcard, error)
	CreateFlashcard(ctx context.Context, flashcard *models.Flashcard) error
	UpdateFlashcard(ctx context.Context, id string, upd FlashcardUpdate) (*models.Flashcard, error)
	DeleteFlashcard(ctx context.Context, id string) (bool, error)
}
