package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPass           string
	DBName           string
	ServerPort       string
	RedisURL         string
	Env              string
	FrontendURL      string
	MinioURL         string
	MinioPublicURL   string
	MinioUser        string
	MinioPassword    string
	MinioBucket      string
	MaxFileSize      int64
	MaxImagesPerPost int
}

func LoadConfig() Config {
	maxFileSize := getEnvAsInt64("MAX_FILE_SIZE", 10*1024*1024) // 10MB default
	maxImagesPerPost := getEnvAsInt("MAX_IMAGES_PER_POST", 10)

	return Config{
		DBHost:           getEnv("DB_HOST", "postgres"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPass:           getEnv("DB_PASSWORD", "password"),
		DBName:           getEnv("DB_NAME", "travelbuddy"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		RedisURL:         getEnv("REDIS_URL", "redis:6379"),
		Env:              getEnv("ENV", "dev"),
		FrontendURL:      getEnv("FRONTEND_URL", ""),
		MinioURL:         getEnv("MINIO_URL", "localhost:9000"),
		MinioPublicURL:   getEnv("MINIO_PUBLIC_URL", ""),
		MinioUser:        getEnv("MINIO_USER", "minioadmin"),
		MinioPassword:    getEnv("MINIO_PASSWORD", "minioadmin"),
		MinioBucket:      getEnv("MINIO_BUCKET", "travelbuddy-images"),
		MaxFileSize:      maxFileSize,
		MaxImagesPerPost: maxImagesPerPost,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	}
	return fallback
}

// CORSOrigins returns the browser origins allowed to call the API: the
// comma-separated FRONTEND_URL list, or the local dev frontend when unset.
func (c *Config) CORSOrigins() []string {
	if c.FrontendURL == "" {
		return []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	origins := strings.Split(c.FrontendURL, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}
