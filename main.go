package main

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/rs/cors"

	"github.com/diogosalvadorb/Recallify/ai"
	"github.com/diogosalvadorb/Recallify/auth"
	"github.com/diogosalvadorb/Recallify/config"
	"github.com/diogosalvadorb/Recallify/handlers"
	"github.com/diogosalvadorb/Recallify/store"
)

func main() {
	cfg := config.Load()

	db, err := config.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database setup failed", "err", err)
	}

	h := &handlers.Handler{
		Store: store.NewGorm(db),
		AI: ai.NewClient(ai.Config{
			OpenAIKey:     cfg.OpenAIKey,
			ElevenLabsKey: cfg.ElevenLabsKey,
			Voices:        ai.DefaultVoices(),
		}),
	}

	mux := http.NewServeMux()

	// Notes
	mux.HandleFunc("GET /api/notes", h.GetNotes)
	mux.HandleFunc("POST /api/notes", h.CreateNote)
	mux.HandleFunc("GET /api/notes/{id}", h.GetNoteByID)
	mux.HandleFunc("PUT /api/notes/{id}", h.UpdateNoteByID)
	mux.HandleFunc("DELETE /api/notes/{id}", h.DeleteNoteByID)

	// Note generation
	mux.HandleFunc("POST /api/notes/{id}/generate-summary", h.GenerateNoteSummary)
	mux.HandleFunc("POST /api/notes/{id}/generate-audio", h.GenerateNoteAudio)
	mux.HandleFunc("POST /api/notes/{id}/flashcards/generate", h.GenerateNoteFlashcards)

	// Note flashcards
	mux.HandleFunc("GET /api/notes/{noteId}/flashcards", h.GetFlashcardsForNote)
	mux.HandleFunc("POST /api/notes/{noteId}/flashcards", h.CreateFlashcardsForNote)

	// Categories
	mux.HandleFunc("GET /api/categories", h.GetCategories)
	mux.HandleFunc("POST /api/categories", h.CreateCategory)
	mux.HandleFunc("GET /api/categories/{id}", h.GetCategoryByID)
	mux.HandleFunc("PUT /api/categories/{id}", h.UpdateCategoryByID)
	mux.HandleFunc("DELETE /api/categories/{id}", h.DeleteCategoryByID)

	// Flashcards
	mux.HandleFunc("GET /api/flashcards", h.GetFlashcards)
	mux.HandleFunc("DELETE /api/flashcards/{id}", h.DeleteFlashcardByID)

	// Stateless generation
	mux.HandleFunc("POST /api/ai/generate-audio", h.GenerateAudio)
	mux.HandleFunc("POST /api/ai/generate-flashcards", h.GenerateFlashcards)

	var handler http.Handler = mux
	if cfg.SupabaseJWTSecret != "" {
		handler = auth.Middleware(cfg.SupabaseJWTSecret)(mux)
	} else {
		log.Warn("SUPABASE_JWT_SECRET not set, running without authentication")
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(handler)

	serverAddr := "0.0.0.0:" + cfg.Port
	log.Info("starting server", "addr", serverAddr)

	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
