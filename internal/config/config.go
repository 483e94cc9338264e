package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Replicate API
	ReplicateAPIToken   string
	ReplicateAPIBaseURL string

	// Upload storage
	StorageBackend string // "disk" or "supabase"
	UploadDir      string
	MaxUploadBytes int64

	// Supabase (only used when StorageBackend == "supabase")
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseStorageBucket  string

	// Auth (optional; API is open when the secret is empty)
	APIJWTSecret string

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
	BaseURL     string

	// PublicBaseURL replaces loopback hosts in image URLs sent to the
	// inference provider. Empty means no rewriting.
	PublicBaseURL string
}

func Load() (*Config, error) {
	cfg := &Config{
		ReplicateAPIToken:   getEnv("REPLICATE_API_TOKEN", ""),
		ReplicateAPIBaseURL: getEnv("REPLICATE_API_BASE_URL", "https://api.replicate.com/v1/"),

		StorageBackend: getEnv("STORAGE_BACKEND", "disk"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "furniture-uploads"),

		APIJWTSecret: getEnv("API_JWT_SECRET", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ReplicateAPIToken == "" {
		return fmt.Errorf("REPLICATE_API_TOKEN is required")
	}
	if c.StorageBackend != "disk" && c.StorageBackend != "supabase" {
		return fmt.Errorf("STORAGE_BACKEND must be \"disk\" or \"supabase\", got %q", c.StorageBackend)
	}
	if c.StorageBackend == "supabase" {
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required when STORAGE_BACKEND is \"supabase\"")
		}
		if c.SupabasePublishableKey == "" {
			return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required when STORAGE_BACKEND is \"supabase\"")
		}
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
