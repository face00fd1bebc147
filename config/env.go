package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file if one is present. Missing files are fine; the
// process environment is used either way.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		Logger.Warn("No .env file loaded, using environment variables instead: ", err)
	}
}

// ListenAddr returns the HTTP listen address, defaulting to :8080.
func ListenAddr() string {
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}
