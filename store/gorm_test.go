package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diogosalvadorb/Recallify/models"
)

func newTestStore(t *testing.T) *Gorm {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Note{}, &models.Category{}, &models.Flashcard{}))

	return NewGorm(db)
}

func strPtr(s string) *string {
	return &s
}

func createNote(t *testing.T, s *Gorm, title string, categoryID *string) models.Note {
	t.Helper()

	note := models.Note{
		Title:      title,
		Content:    "content of " + title,
		CategoryID: categoryID,
	}
	require.NoError(t, s.CreateNote(context.Background(), &note))
	return note
}

func TestCreateAndGetNote(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	note := models.Note{Title: "Cells", Content: "The cell is the basic unit of life"}
	require.NoError(t, s.CreateNote(ctx, &note))

	assert.NotEmpty(t, note.ID)
	assert.False(t, note.CreatedAt.IsZero())

	got, err := s.GetNote(ctx, note.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, note.Title, got.Title)
	assert.Equal(t, note.Content, got.Content)
	assert.Nil(t, got.Summary)
	assert.Nil(t, got.CategoryID)
}

func TestGetNoteMissing(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetNote(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListNotesOrderedByUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := createNote(t, s, "first", nil)
	time.Sleep(10 * time.Millisecond)
	second := createNote(t, s, "second", nil)
	time.Sleep(10 * time.Millisecond)

	// Touching the oldest note moves it to the front.
	_, err := s.UpdateNote(ctx, first.ID, NoteUpdate{Title: strPtr("first updated")})
	require.NoError(t, err)

	notes, err := s.ListNotes(ctx, "")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, second.ID, notes[1].ID)
}

func TestListNotesFiltersByCategory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	category := models.Category{Name: "Biology"}
	require.NoError(t, s.CreateCategory(ctx, &category))

	inCategory := createNote(t, s, "cells", &category.ID)
	createNote(t, s, "uncategorized", nil)

	notes, err := s.ListNotes(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, inCategory.ID, notes[0].ID)
}

func TestUpdateNotePartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	category := models.Category{Name: "Biology"}
	require.NoError(t, s.CreateCategory(ctx, &category))

	note := createNote(t, s, "cells", &category.ID)
	_, err := s.UpdateNote(ctx, note.ID, NoteUpdate{Summary: strPtr("a summary")})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	// Only the title is supplied; summary and category must survive.
	updated, err := s.UpdateNote(ctx, note.ID, NoteUpdate{Title: strPtr("mitochondria")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "mitochondria", updated.Title)
	require.NotNil(t, updated.Summary)
	assert.Equal(t, "a summary", *updated.Summary)
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, category.ID, *updated.CategoryID)
	assert.True(t, updated.UpdatedAt.After(note.UpdatedAt))

	// An explicit empty value clears the field.
	cleared, err := s.UpdateNote(ctx, note.ID, NoteUpdate{Summary: strPtr(""), CategoryID: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Summary)
	assert.Nil(t, cleared.CategoryID)
	assert.Equal(t, "mitochondria", cleared.Title)
}

func TestUpdateNoteEmptyRequiredFieldsPreserved(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	note := createNote(t, s, "Cells", nil)

	// Title and content are required: an explicit empty value keeps the
	// stored one instead of blanking it.
	updated, err := s.UpdateNote(ctx, note.ID, NoteUpdate{Title: strPtr(""), Content: strPtr("")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Cells", updated.Title)
	assert.Equal(t, "content of Cells", updated.Content)
}

func TestUpdateCategoryEmptyNamePreserved(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	category := models.Category{Name: "Biology"}
	require.NoError(t, s.CreateCategory(ctx, &category))

	updated, err := s.UpdateCategory(ctx, category.ID, CategoryUpdate{Name: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "Biology", updated.Name)
}

func TestUpdateNoteMissing(t *testing.T) {
	s := newTestStore(t)

	updated, err := s.UpdateNote(context.Background(), "does-not-exist", NoteUpdate{Title: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteNoteCascadesFlashcards(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	note := createNote(t, s, "cells", nil)
	other := createNote(t, s, "other", nil)

	for i := 0; i < 3; i++ {
		card := models.Flashcard{NoteID: note.ID, Question: "q", Answer: "a"}
		require.NoError(t, s.CreateFlashcard(ctx, &card))
	}
	kept := models.Flashcard{NoteID: other.ID, Question: "q", Answer: "a"}
	require.NoError(t, s.CreateFlashcard(ctx, &kept))

	deleted, err := s.DeleteNote(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	cards, err := s.ListFlashcardsByNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, cards)

	// Cards of other notes are untouched.
	remaining, err := s.ListFlashcards(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}

func TestDeleteNoteWithoutFlashcards(t *testing.T) {
	s := newTestStore(t)

	note := createNote(t, s, "cells", nil)

	deleted, err := s.DeleteNote(context.Background(), note.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteNote(context.Background(), note.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListCategoriesOrderedByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Physics", "Biology", "Chemistry"} {
		category := models.Category{Name: name}
		require.NoError(t, s.CreateCategory(ctx, &category))
	}

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Biology", categories[0].Name)
	assert.Equal(t, "Chemistry", categories[1].Name)
	assert.Equal(t, "Physics", categories[2].Name)
}

func TestUpdateCategoryPartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	category := models.Category{Name: "Biology", Color: strPtr("#00ff00")}
	require.NoError(t, s.CreateCategory(ctx, &category))

	updated, err := s.UpdateCategory(ctx, category.ID, CategoryUpdate{Name: strPtr("Cell Biology")})
	require.NoError(t, err)
	assert.Equal(t, "Cell Biology", updated.Name)
	require.NotNil(t, updated.Color)
	assert.Equal(t, "#00ff00", *updated.Color)
}

func TestUpdateCategoryMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateCategory(context.Background(), "does-not-exist", CategoryUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteCategoryNullifiesNotes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	category := models.Category{Name: "Biology"}
	require.NoError(t, s.CreateCategory(ctx, &category))
	other := models.Category{Name: "Physics"}
	require.NoError(t, s.CreateCategory(ctx, &other))

	n1 := createNote(t, s, "cells", &category.ID)
	n2 := createNote(t, s, "dna", &category.ID)
	unaffected := createNote(t, s, "gravity", &other.ID)

	time.Sleep(10 * time.Millisecond)

	deleted, err := s.DeleteCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	for _, before := range []models.Note{n1, n2} {
		got, err := s.GetNote(ctx, before.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.CategoryID)
		assert.True(t, got.UpdatedAt.After(before.UpdatedAt), "updatedAt must be refreshed by the nullify")
	}

	got, err := s.GetNote(ctx, unaffected.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, other.ID, *got.CategoryID)
}

func TestDeleteCategoryMissing(t *testing.T) {
	s := newTestStore(t)

	deleted, err := s.DeleteCategory(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCreateFlashcardRequiresNote(t *testing.T) {
	s := newTestStore(t)

	card := models.Flashcard{NoteID: "does-not-exist", Question: "q", Answer: "a"}
	err := s.CreateFlashcard(context.Background(), &card)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestListFlashcardsOrderedByCreatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	note := createNote(t, s, "cells", nil)

	var ids []string
	for i := 0; i < 3; i++ {
		card := models.Flashcard{NoteID: note.ID, Question: "q", Answer: "a"}
		require.NoError(t, s.CreateFlashcard(ctx, &card))
		ids = append(ids, card.ID)
		time.Sleep(10 * time.Millisecond)
	}

	cards, err := s.ListFlashcardsByNote(ctx, note.ID)
	require.NoError(t, err)
	require.Len(t, cards, 3)

	// Newest first
	assert.Equal(t, ids[2], cards[0].ID)
	assert.Equal(t, ids[1], cards[1].ID)
	assert.Equal(t, ids[0], cards[2].ID)
}

func TestUpdateAndDeleteFlashcard(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	note := createNote(t, s, "cells", nil)
	card := models.Flashcard{NoteID: note.ID, Question: "q", Answer: "a"}
	require.NoError(t, s.CreateFlashcard(ctx, &card))

	updated, err := s.UpdateFlashcard(ctx, card.ID, FlashcardUpdate{Answer: strPtr("a better answer")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "q", updated.Question)
	assert.Equal(t, "a better answer", updated.Answer)

	deleted, err := s.DeleteFlashcard(ctx, card.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteFlashcard(ctx, card.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
