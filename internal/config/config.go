package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	DataDir         string
	ImagesDir       string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	CatalogCacheTTL time.Duration
	AdminEmail      string
	AdminPassword   string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "5000"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		ImagesDir:       getEnv("IMAGES_DIR", "./public/images"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		CatalogCacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 30*time.Second),
		AdminEmail:      getEnv("ADMIN_EMAIL", "admin@cvsu.edu.ph"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
