package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	HTTPTimeout int
	Session     SessionConfig
}

type SessionConfig struct {
	Backend  string
	FilePath string
	RedisURL string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	sessionCfg := SessionConfig{
		Backend:  getEnv("PULSE_SESSION_BACKEND", "file"),
		FilePath: getEnv("PULSE_SESSION_FILE", defaultSessionFile()),
		RedisURL: getEnv("PULSE_REDIS_URL", "redis://localhost:6379/0"),
	}

	return Config{
		APIBaseURL:  getEnv("PULSE_API_URL", "http://localhost:8000"),
		HTTPTimeout: getEnvInt("PULSE_HTTP_TIMEOUT", 0),
		Session:     sessionCfg,
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".community-pulse", "session.json")
	}
	return filepath.Join(dir, "community-pulse", "session.json")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}
