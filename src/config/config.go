package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	JWTSecret   string
	JWTExpire   time.Duration
	GithubToken string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// LoadConfig reads the .env file if present and falls back to environment variables
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "3000"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "devnetwork"),
		JWTSecret:   getEnv("JWT_SECRET", "fallback-secret-key"),
		JWTExpire:   parseDuration(getEnv("JWT_EXPIRE", "24h")),
		GithubToken: getEnv("GITHUB_TOKEN", ""),
	}
}
