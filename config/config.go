// Package config loads application settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings read once at startup.
type Config struct {
	// Company identity printed on exported documents.
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string

	// Session cookie settings for the operator login.
	SessionCookie string
	SessionTTL    time.Duration

	// Wizard drafts older than this are purged by the background job.
	DraftTTL time.Duration

	// Consecutive report fetch failures before the sample dataset is shown.
	ReportFailureThreshold int
}

// Load reads .env (if present) and the process environment into a Config.
// Missing values fall back to usable defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file loaded: %v", err)
	}

	return Config{
		CompanyName:    getEnv("FD_COMPANY_NAME", "FreightDesk Logistics"),
		CompanyAddress: getEnv("FD_COMPANY_ADDRESS", "Mumbai, Maharashtra"),
		CompanyEmail:   getEnv("FD_COMPANY_EMAIL", "ops@freightdesk.example"),

		SessionCookie: getEnv("FD_SESSION_COOKIE", "fd_session"),
		SessionTTL:    getDuration("FD_SESSION_TTL", 12*time.Hour),

		DraftTTL: getDuration("FD_DRAFT_TTL", 2*time.Hour),

		ReportFailureThreshold: getInt("FD_REPORT_FAILURE_THRESHOLD", 3),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
