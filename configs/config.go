package config

import (
	"os"
	"strconv"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Completion struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
}

type MediaQueue struct {
	BaseURL      string
	APIKey       string
	PollInterval time.Duration
}

type Config struct {
	PostgresURI string
	RedisURI    string
	FrontendURL string
	Completion  Completion
	MediaQueue  MediaQueue
	R2          R2
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		Completion: Completion{
			BaseURL:     getEnv("COMPLETION_BASE_URL", "https://api.openai.com/v1"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Model:       getEnv("COMPLETION_MODEL", "gpt-4o"),
			Temperature: getEnvFloat("COMPLETION_TEMPERATURE", 0.8),
		},
		MediaQueue: MediaQueue{
			BaseURL:      getEnv("MEDIA_QUEUE_BASE_URL", "https://queue.fal.run"),
			APIKey:       getEnv("FAL_KEY", ""),
			PollInterval: getEnvDuration("MEDIA_POLL_INTERVAL", 4*time.Second),
		},
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
