package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first if present; real
// environment variables win over .env entries (godotenv.Load never
// overwrites existing variables).
//
// Recognized variables:
//
//	CHAMPS_ENDPOINT  — "local" or "remote"
//	CHAMPS_BASE_URL  — explicit backend base URL
//	CHAMPS_DB        — path to the local sqlite database
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CHAMPS_ENDPOINT"); v != "" {
		cfg.Endpoint = Endpoint(v)
	}
	if v := os.Getenv("CHAMPS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("CHAMPS_DB"); v != "" {
		cfg.DatabasePath = v
	}
}
