package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Configuration values loaded from the environment (optionally via a .env file)
var (
	Port             string
	ClientURL        string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	RedisAddress     string
	RedisPassword    string
	JWTSecret        string
	DefaultPassword  string
	GinMode          string
)

// LoadConfig reads the .env file if present and populates the package variables
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	Port = getEnv("PORT", "8080")
	ClientURL = getEnv("CLIENT_URL", "http://localhost:5173")
	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "zenquiz")
	RedisAddress = getEnv("REDIS_ADDRESS", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	JWTSecret = getEnv("JWT_SECRET", "")
	DefaultPassword = getEnv("DEFAULT_PASSWORD", "")
	GinMode = getEnv("GIN_MODE", "debug")

	if JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
}

// getEnv returns the value of the environment variable or a fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
