package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"github.com/diogosalvadorb/Recallify/models"
)

// Gorm is the single concrete Store backed by a *gorm.DB connection
// (postgres in production, sqlite locally and in tests).
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) ListNotes(ctx context.Context, categoryID string) ([]models.Note, error) {
	q := s.db.WithContext(ctx).Order("updated_at DESC")
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	var notes []models.Note
	if err := q.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *Gorm) GetNote(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *Gorm) CreateNote(ctx context.Context, note *models.Note) error {
	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate note ID: %w", err)
	}
	note.ID = id

	return s.db.WithContext(ctx).Create(note).Error
}

func (s *Gorm) UpdateNote(ctx context.Context, id string, upd NoteUpdate) (*models.Note, error) {
	note, err := s.GetNote(ctx, id)
	if err != nil || note == nil {
		return nil, err
	}

	// Title and content are required fields: an empty value preserves the
	// stored one, only the optional fields react to explicit clears.
	if upd.Title != nil && *upd.Title != "" {
		note.Title = *upd.Title
	}
	if upd.Content != nil && *upd.Content != "" {
		note.Content = *upd.Content
	}
	note.Summary = applyOptional(note.Summary, upd.Summary)
	note.AudioURL = applyOptional(note.AudioURL, upd.AudioURL)
	note.CategoryID = applyOptional(note.CategoryID, upd.CategoryID)

	if err := s.db.WithContext(ctx).Save(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

func (s *Gorm) DeleteNote(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{})
	if res.Error != nil {
		return false, res.Error
	}
	deleted := res.RowsAffected > 0

	// Cascade delete of the note's flashcards. Runs even when the note was
	// already gone so that a retry after a crash between the two statements
	// still clears orphaned cards.
	if err := s.db.WithContext(ctx).Where("note_id = ?", id).Delete(&models.Flashcard{}).Error; err != nil {
		return deleted, fmt.Errorf("failed to delete flashcards for note %s: %w", id, err)
	}

	return deleted, nil
}

func (s *Gorm) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Gorm) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Gorm) CreateCategory(ctx context.Context, category *models.Category) error {
	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate category ID: %w", err)
	}
	category.ID = id

	return s.db.WithContext(ctx).Create(category).Error
}

func (s *Gorm) UpdateCategory(ctx context.Context, id string, upd CategoryUpdate) (*models.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if upd.Name != nil && *upd.Name != "" {
		category.Name = *upd.Name
	}
	category.Color = applyOptional(category.Color, upd.Color)

	res := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       category.Name,
		"color":      category.Color,
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// The category vanished between the lookup and the update.
		return nil, ErrCategoryNotFound
	}

	return s.GetCategory(ctx, id)
}

func (s *Gorm) DeleteCategory(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return false, res.Error
	}
	deleted := res.RowsAffected > 0

	// Clear the reference on every note that pointed at the category and
	// refresh their updated_at. Same idempotency rule as DeleteNote: runs
	// unconditionally so a retry finishes the job.
	err := s.db.WithContext(ctx).Model(&models.Note{}).Where("category_id = ?", id).Updates(map[string]interface{}{
		"category_id": nil,
		"updated_at":  time.Now().UTC(),
	}).Error
	if err != nil {
		return deleted, fmt.Errorf("failed to clear category from notes: %w", err)
	}

	return deleted, nil
}

func (s *Gorm) ListFlashcards(ctx context.Context) ([]models.Flashcard, error) {
	var flashcards []models.Flashcard
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&flashcards).Error; err != nil {
		return nil, err
	}
	return flashcards, nil
}

func (s *Gorm) ListFlashcardsByNote(ctx context.Context, noteID string) ([]models.Flashcard, error) {
	var flashcards []models.Flashcard
	err := s.db.WithContext(ctx).Where("note_id = ?", noteID).Order("created_at DESC").Find(&flashcards).Error
	if err != nil {
		return nil, err
	}
	return flashcards, nil
}

func (s *Gorm) GetFlashcard(ctx context.Context, id string) (*models.Flashcard, error) {
	var flashcard models.Flashcard
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&flashcard).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &flashcard, nil
}

func (s *Gorm) CreateFlashcard(ctx context.Context, flashcard *models.Flashcard) error {
	// A flashcard only exists in association with a note.
	note, err := s.GetNote(ctx, flashcard.NoteID)
	if err != nil {
		return err
	}
	if note == nil {
		return ErrNoteNotFound
	}

	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate flashcard ID: %w", err)
	}
	flashcard.ID = id

	return s.db.WithContext(ctx).Create(flashcard).Error
}

func (s *Gorm) UpdateFlashcard(ctx context.Context, id string, upd FlashcardUpdate) (*models.Flashcard, error) {
	flashcard, err := s.GetFlashcard(ctx, id)
	if err != nil || flashcard == nil {
		return nil, err
	}

	if upd.Question != nil {
		flashcard.Question = *upd.Question
	}
	if upd.Answer != nil {
		flashcard.Answer = *upd.Answer
	}

	if err := s.db.WithContext(ctx).Save(flashcard).Error; err != nil {
		return nil, err
	}
	return flashcard, nil
}

func (s *Gorm) DeleteFlashcard(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Flashcard{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// applyOptional merges one optional field of a partial update: nil keeps the
// current value, a pointer to the empty string clears it.
func applyOptional(current, update *string) *string {
	if update == nil {
		return current
	}
	if *update == "" {
		return nil
	}
	return update
}
