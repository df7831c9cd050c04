package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/diogosalvadorb/Recallify/ai"
	"github.com/diogosalvadorb/Recallify/store"
)

// Handler binds HTTP requests to the store and the AI generation client.
type Handler struct {
	Store store.Store
	AI    ai.Generator
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", "err", err)
	}
}

// writeError translates the core error taxonomy into HTTP statuses. The
// handlers never retry or fall back; provider and parse failures surface as
// gateway errors.
func writeError(w http.ResponseWriter, err error) {
	var provErr *ai.ProviderError

	switch {
	case errors.Is(err, store.ErrNoteNotFound),
		errors.Is(err, store.ErrCategoryNotFound),
		errors.Is(err, ai.ErrVoiceNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &provErr):
		http.Error(w, provErr.Error(), http.StatusBadGateway)
	case errors.Is(err, ai.ErrMalformedEnvelope),
		errors.Is(err, ai.ErrEmptyContent),
		errors.Is(err, ai.ErrGenerationEmpty),
		errors.Is(err, ai.ErrInvalidFlashcardPayload):
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.Is(err, ai.ErrProviderUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		log.Error("request failed", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
