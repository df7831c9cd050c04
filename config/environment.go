package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config carries everything main needs to wire the service.
type Config struct {
	Port              string
	DatabaseURL       string
	OpenAIKey         string
	ElevenLabsKey     string
	SupabaseJWTSecret string
}

// Load reads configuration from the environment, pulling in a local .env
// file first when one exists.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, relying on environment variables", "err", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}

	return Config{
		Port:              port,
		DatabaseURL:       os.Getenv("DB_URL"),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		ElevenLabsKey:     os.Getenv("ELEVENLABS_API_KEY"),
		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
	}
}
