package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                    string
	Port                   string
	LogLevel               string
	AccessTokenSecret      string
	RefreshTokenSecret     string
	AccessExpiryMin        int
	RefreshExpiryMin       int
	MaxActiveRefreshTokens int

	// Optional startup admin. The store starts empty, so without a seeded
	// admin the role-gated endpoints cannot be reached.
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	// .env is optional; system environment always wins.
	_ = godotenv.Load()

	return &Config{
		Env:                    getEnv("ENV", "development"),
		Port:                   getEnv("PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		AccessTokenSecret:      mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret:     mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:        getEnvAsInt("ACCESS_TOKEN_EXPIRY", 15),
		RefreshExpiryMin:       getEnvAsInt("REFRESH_TOKEN_EXPIRY", 10080),
		MaxActiveRefreshTokens: getEnvAsInt("MAX_ACTIVE_REFRESH_TOKENS", 5),
		AdminUsername:          getEnv("ADMIN_USERNAME", ""),
		AdminEmail:             getEnv("ADMIN_EMAIL", ""),
		AdminPassword:          getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
