package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// GenerateAudio synthesizes speech for arbitrary text without touching any
// stored note.
func (h *Handler) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	type GenerateAudioRequest struct {
		Text  string `json:"text"`
		Voice string `json:"voice"`
	}

	var req GenerateAudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "Text is required", http.StatusBadRequest)
		return
	}

	audioContent, err := h.AI.GenerateAudio(r.Context(), req.Text, req.Voice)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"audioContent": audioContent})
}

// GenerateFlashcards generates cards from arbitrary content without
// persisting them.
func (h *Handler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	type GenerateFlashcardsRequest struct {
		Content string `json:"content"`
	}

	var req GenerateFlashcardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		http.Error(w, "Content is required", http.StatusBadRequest)
		return
	}

	cards, err := h.AI.GenerateFlashcards(r.Context(), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"flashcards": cards})
}
