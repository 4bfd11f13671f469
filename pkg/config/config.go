package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	FirebaseCredentials string
	JWTSecret           string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=greenur port=5432 sslmode=disable"),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
