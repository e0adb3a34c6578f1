package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabasePath string
}

// Load reads configuration from the environment, optionally seeded from
// a .env file. A missing .env is fine.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "pelada.db"
	}

	return &Config{
		Port:         port,
		DatabasePath: dbPath,
	}
}
