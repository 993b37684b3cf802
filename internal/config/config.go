// Package config loads service configuration from environment variables
// and the loan terms file. All validation happens here, at startup; the
// rest of the system assumes configuration is well-formed.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// DBPath is the SQLite database file for the payment ledger.
	DBPath string

	// TermsPath is the JSON file holding the loan terms.
	TermsPath string

	// JWTSecret signs lender session tokens.
	JWTSecret string

	// TokenDuration is how long a lender session stays valid.
	TokenDuration time.Duration

	// LenderPassphraseHash is the bcrypt hash of the lender passphrase.
	// Empty disables authentication (useful for local development).
	LenderPassphraseHash string

	SMTP SMTPConfig
}

// SMTPConfig holds mail transport settings for statement delivery.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		Port:                 getEnvInt("PORT", 8080),
		DBPath:               getEnv("DB_PATH", "./data/loan.db"),
		TermsPath:            getEnv("TERMS_PATH", "./config/loan.json"),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		TokenDuration:        getEnvDuration("TOKEN_DURATION", 24*time.Hour),
		LenderPassphraseHash: getEnv("LENDER_PASSPHRASE_HASH", ""),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
