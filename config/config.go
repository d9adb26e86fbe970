package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	JWTSecret         string
	DBPath            string
	RatesPath         string
	AdminUsername     string
	AdminPasswordHash string
	TokenExpiry       string
}

var (
	AppConfig Config
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	AppConfig = Config{
		Port:              getEnvOrDefault("PORT", "3000"),
		JWTSecret:         mustGetEnv("JWT_SECRET"),
		DBPath:            getEnvOrDefault("DB_PATH", "payslips.db"),
		RatesPath:         os.Getenv("RATES_PATH"),
		AdminUsername:     getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: mustGetEnv("ADMIN_PASSWORD_HASH"),
		TokenExpiry:       getEnvOrDefault("TOKEN_EXPIRY", "24h"),
	}
}

func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Environment variable %s is required", key)
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
