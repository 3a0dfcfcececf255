package config

import "os"

type Config struct {
	Port        string
	DatabaseDSN string
	Env         string
	StoreURL    string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "comercial.db")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.StoreURL = getEnv("STORE_URL", "http://127.0.0.1:8080")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
