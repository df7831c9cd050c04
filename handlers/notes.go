package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diogosalvadorb/Recallify/models"
	"github.com/diogosalvadorb/Recallify/store"
)

func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Store.ListNotes(r.Context(), r.URL.Query().Get("categoryId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *Handler) GetNoteByID(w http.ResponseWriter, r *http.Request) {
	note, err := h.Store.GetNote(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if note == nil {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	type CreateNoteRequest struct {
		Title      string  `json:"title"`
		Content    string  `json:"content"`
		CategoryID *string `json:"categoryId"`
	}

	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Content == "" {
		http.Error(w, "Title and content are required", http.StatusBadRequest)
		return
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		category, err := h.Store.GetCategory(r.Context(), *req.CategoryID)
		if err != nil {
			writeError(w, err)
			return
		}
		if category == nil {
			http.Error(w, "Category not found", http.StatusBadRequest)
			return
		}
	}

	note := models.Note{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	}

	// The summary is generated up front so a freshly created note is
	// immediately study-ready.
	summary, err := h.AI.GenerateSummary(r.Context(), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	note.Summary = &summary

	if err := h.Store.CreateNote(r.Context(), &note); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *Handler) UpdateNoteByID(w http.ResponseWriter, r *http.Request) {
	type UpdateNoteRequest struct {
		Title      *string `json:"title,omitempty"`
		Content    *string `json:"content,omitempty"`
		Summary    *string `json:"summary,omitempty"`
		AudioURL   *string `json:"audioUrl,omitempty"`
		CategoryID *string `json:"categoryId,omitempty"`
	}

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		category, err := h.Store.GetCategory(r.Context(), *req.CategoryID)
		if err != nil {
			writeError(w, err)
			return
		}
		if category == nil {
			http.Error(w, "Category not found", http.StatusBadRequest)
			return
		}
	}

	note, err := h.Store.UpdateNote(r.Context(), r.PathValue("id"), store.NoteUpdate{
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		AudioURL:   req.AudioURL,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if note == nil {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) DeleteNoteByID(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Store.DeleteNote(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GenerateNoteSummary regenerates the summary for an existing note and
// persists it.
func (h *Handler) GenerateNoteSummary(w http.ResponseWriter, r *http.Request) {
	note, err := h.Store.GetNote(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if note == nil {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	summary, err := h.AI.GenerateSummary(r.Context(), note.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.Store.UpdateNote(r.Context(), note.ID, store.NoteUpdate{Summary: &summary})
	if err != nil {
		writeError(w, err)
		return
	}
	if updated == nil {
		// The note was deleted while the summary was being generated.
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

// GenerateNoteAudio synthesizes speech for a note, preferring its summary
// over the full content.
func (h *Handler) GenerateNoteAudio(w http.ResponseWriter, r *http.Request) {
	type GenerateAudioRequest struct {
		Voice string `json:"voice"`
	}

	note, err := h.Store.GetNote(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if note == nil {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	var req GenerateAudioRequest
	if r.Body != nil {
		// The voice is optional; an empty body means the default voice.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	textToSpeak := note.Content
	if note.Summary != nil && *note.Summary != "" {
		textToSpeak = *note.Summary
	}

	audioContent, err := h.AI.GenerateAudio(r.Context(), textToSpeak, req.Voice)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"audioContent": audioContent})
}

// GenerateNoteFlashcards generates question/answer pairs for a note and
// persists each one. Creation is sequential; a failure partway through
// leaves the earlier cards in place.
func (h *Handler) GenerateNoteFlashcards(w http.ResponseWriter, r *http.Request) {
	noteID := r.PathValue("id")

	note, err := h.Store.GetNote(r.Context(), noteID)
	if err != nil {
		writeError(w, err)
		return
	}
	if note == nil {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	cards, err := h.AI.GenerateFlashcards(r.Context(), note.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	flashcards := make([]models.Flashcard, 0, len(cards))
	for _, card := range cards {
		flashcard := models.Flashcard{
			NoteID:   noteID,
			Question: card.Question,
			Answer:   card.Answer,
		}
		if err := h.Store.CreateFlashcard(r.Context(), &flashcard); err != nil {
			writeError(w, err)
			return
		}
		flashcards = append(flashcards, flashcard)
	}

	writeJSON(w, http.StatusOK, flashcards)
}
