package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diogosalvadorb/Recallify/models"
)

func (h *Handler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	flashcards, err := h.Store.ListFlashcards(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, flashcards)
}

func (h *Handler) GetFlashcardsForNote(w http.ResponseWriter, r *http.Request) {
	noteID := r.PathValue("noteId")

	note, err := h.Store.GetNote(r.Context(), noteID)
	if err != nil {
		writeError(w, err)
		return
	}
	if note == nil {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	flashcards, err := h.Store.ListFlashcardsByNote(r.Context(), noteID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, flashcards)
}

// CreateFlashcardsForNote creates a batch of caller-authored cards against a
// note. Cards are created one by one; there is no rollback of earlier cards
// if a later one fails.
func (h *Handler) CreateFlashcardsForNote(w http.ResponseWriter, r *http.Request) {
	type CardRequest struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	type CreateFlashcardsRequest struct {
		Flashcards []CardRequest `json:"flashcards"`
	}

	noteID := r.PathValue("noteId")

	note, err := h.Store.GetNote(r.Context(), noteID)
	if err != nil {
		writeError(w, err)
		return
	}
	if note == nil {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	var req CreateFlashcardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created := make([]models.Flashcard, 0, len(req.Flashcards))
	for _, card := range req.Flashcards {
		if card.Question == "" || card.Answer == "" {
			http.Error(w, "Each flashcard must have a question and answer", http.StatusBadRequest)
			return
		}

		flashcard := models.Flashcard{
			NoteID:   noteID,
			Question: card.Question,
			Answer:   card.Answer,
		}
		if err := h.Store.CreateFlashcard(r.Context(), &flashcard); err != nil {
			writeError(w, err)
			return
		}
		created = append(created, flashcard)
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteFlashcardByID(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Store.DeleteFlashcard(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		http.Error(w, "Flashcard not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
