package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCP   Mode = "gcp"
)

type Config struct {
	Mode Mode

	Port string

	GCPProjectID string
	GCPLocation  string
	MentorModel  string
	WorkerModel  string // cheaper model for suggestions / newsletter / opportunities

	StorageBackend string // "memory" or "firestore"
	UseMockLLM     bool   // true = use mock even on GCP

	// MentorTimeout bounds the remote mentor call; past it the turn falls
	// back to the local strategy engine.
	MentorTimeout time.Duration

	// FallbackDelay is inserted before a local reply so a live UI does not
	// flip modes instantaneously. Zero disables it.
	FallbackDelay time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}

// Load reads all env vars and builds the config
func Load() *Config {
	modeStr := getEnv("ELEVATE_MODE", "local")
	var mode Mode
	switch modeStr {
	case "gcp":
		mode = ModeGCP
	default:
		mode = ModeLocal
	}

	cfg := &Config{
		Mode: mode,

		Port: getEnv("ELEVATE_PORT", "8080"),

		GCPProjectID: getEnv("ELEVATE_GCP_PROJECT", ""),
		GCPLocation:  getEnv("ELEVATE_GCP_LOCATION", "us-central1"),
		MentorModel:  getEnv("ELEVATE_MENTOR_MODEL", "gemini-2.5-pro"),
		WorkerModel:  getEnv("ELEVATE_WORKER_MODEL", "gemini-2.5-flash"),

		StorageBackend: getEnv("ELEVATE_STORAGE_BACKEND", "memory"),
		UseMockLLM:     getBoolEnv("ELEVATE_USE_MOCK_LLM", mode == ModeLocal),

		MentorTimeout: getDurationEnv("ELEVATE_MENTOR_TIMEOUT", 10*time.Second),
		FallbackDelay: getDurationEnv("ELEVATE_FALLBACK_DELAY", 600*time.Millisecond),
	}

	// Minimal validation in GCP mode
	if cfg.Mode == ModeGCP && cfg.GCPProjectID == "" {
		log.Fatal("ELEVATE_GCP_PROJECT must be set in gcp mode")
	}

	return cfg
}
