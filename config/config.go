package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	DatabaseURL     string
	DatabaseSSL     bool
	ServerPort      string
	CORSOrigin      string
	JwtSecret       string
	SupervisorToken string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
}

// NewConfig reads configuration from a .env file (if present) and the
// environment. JwtSecret and SupervisorToken have no defaults on purpose:
// the caller must refuse to start when they are empty.
func NewConfig() *Config {
	godotenv.Load()

	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DatabaseSSL:     getEnv("DATABASE_SSL", "") == "true",
		ServerPort:      getEnv("PORT", "3000"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "*"),
		JwtSecret:       getEnv("JWT_SECRET", ""),
		SupervisorToken: getEnv("SUPERVISOR_TOKEN", ""),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}
