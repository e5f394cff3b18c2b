package app

import (
	"log"
	"os"
	"strconv"
	"time"

	"crew-poster/db"
	"crew-poster/service"
)

// Config is the runtime configuration read from the environment
type Config struct {
	Port             string
	DatabaseURL      string // Empty disables club presets
	CredentialsPath  string // Empty disables Drive emblems
	MaxDimension     int
	BatchConcurrency int
	PreviewDebounce  time.Duration
	PreviewIdleTTL   time.Duration
	DefaultWidth     int
	DefaultHeight    int
}

// LoadConfig reads the configuration from environment variables, falling back to defaults
func LoadConfig() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	// PORT from some hosts includes a leading colon
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}

	return Config{
		Port:             port,
		DatabaseURL:      db.ConnString(),
		CredentialsPath:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		MaxDimension:     envInt("RENDER_MAX_DIMENSION", service.DefaultMaxDimension),
		BatchConcurrency: envInt("RENDER_BATCH_CONCURRENCY", service.DefaultBatchConcurrency),
		PreviewDebounce:  time.Duration(envInt("PREVIEW_DEBOUNCE_MS", int(service.DefaultPreviewDebounce/time.Millisecond))) * time.Millisecond,
		PreviewIdleTTL:   time.Duration(envInt("PREVIEW_SESSION_TTL_MINUTES", 10)) * time.Minute,
		DefaultWidth:     envInt("RENDER_DEFAULT_WIDTH", 1080),
		DefaultHeight:    envInt("RENDER_DEFAULT_HEIGHT", 1350),
	}
}

// envInt reads a positive integer variable, keeping fallback when unset or invalid
func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("⚠️  Invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return v
}
