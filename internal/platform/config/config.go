package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config captures everything the service needs at startup: listen address,
// Supabase endpoint and service-role credential, and the Gemini key. It is
// built once in main and passed by reference into each component constructor;
// business logic never reads the environment directly.
type Config struct {
	Addr string

	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseTimeout    time.Duration

	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
// A .env file in the working directory is merged in first when present.
func FromEnv() Config {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	return Config{
		Addr:               getEnv("FOODBRIDGE_ADDR", ":8080"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		SupabaseTimeout:    getDuration("SUPABASE_TIMEOUT", 10*time.Second),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiTimeout:      getDuration("GEMINI_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
