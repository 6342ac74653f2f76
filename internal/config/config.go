package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	LogLevel      string
	DataDir       string
	StorageDriver string
	SessionSecret string
	SessionMaxAge time.Duration
	Database      DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:          getEnv("ADDR", ":8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		SessionSecret: getEnv("ROLLBOOK_SESSION_SECRET", "dev-session-secret"),
		SessionMaxAge: getDuration("SESSION_MAX_AGE", 720*time.Hour),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "rollbook"),
			Password: getEnv("DB_PASSWORD", "rollbook"),
			DBName:   getEnv("DB_NAME", "rollbook"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
