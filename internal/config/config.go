package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config groups every environment-driven setting the server needs.
// Defaults mirror the storefront's historical fallbacks; the mail and
// token defaults are insecure placeholders and must be overridden in
// any real deployment.
type Config struct {
	Port            int
	MaxPortAttempts int

	// StoreBackend selects the persistence variant: "sqlite", "postgres"
	// or "memory".
	StoreBackend string
	DatabasePath string // sqlite file path
	DatabaseURL  string // postgres DSN

	JWTSecret string
	TokenTTL  time.Duration

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string
	EmailTo   string

	StaticDir string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; a missing file is
// not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            envInt("PORT", 5000),
		MaxPortAttempts: envInt("PORT_MAX_ATTEMPTS", 10),
		StoreBackend:    envString("STORE_BACKEND", "sqlite"),
		DatabasePath:    envString("DATABASE_PATH", "./users.db"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       envString("JWT_SECRET", "your-secret-key"),
		TokenTTL:        7 * 24 * time.Hour,
		SMTPHost:        envString("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:        envInt("SMTP_PORT", 587),
		EmailUser:       envString("EMAIL_USER", "pushagrifarm@gmail.com"),
		EmailPass:       envString("EMAIL_PASS", "your-app-password"),
		EmailTo:         envString("EMAIL_TO", "pushagrifarm@gmail.com"),
		StaticDir:       envString("STATIC_DIR", "client/build"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
