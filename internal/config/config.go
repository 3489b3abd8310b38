package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	BackendDisk = "disk"
	BackendS3   = "s3"
)

type Config struct {
	Port        string
	DatabaseURL string
	AdminToken  string
	FrontendURL string

	StorageBackend string
	UploadDir      string
	S3Endpoint     string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from the environment. A missing .env file is
// fine; explicit environment variables always win.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=talentbase port=5432 sslmode=disable"),
		AdminToken:  os.Getenv("ADMIN_TOKEN"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		StorageBackend: getEnv("STORAGE_BACKEND", BackendDisk),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads/resumes"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3Bucket:       getEnv("S3_BUCKET", "resumes"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 5),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
