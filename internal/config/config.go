package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Tokens
	AuthTokenTTL  time.Duration // zero disables expiry
	ResetTokenTTL time.Duration

	// Email
	EmailAPIKey  string
	EmailSender  string
	EmailBaseURL string

	// Image storage
	StorageDriver string // "disk" or "s3"
	UploadDir     string
	S3Bucket      string
	S3Region      string
	S3Endpoint    string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "accounts_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AuthTokenTTL:  parseDuration(getEnv("AUTH_TOKEN_TTL", "0s"), 0),
		ResetTokenTTL: parseDuration(getEnv("RESET_TOKEN_TTL", "10m"), 10*time.Minute),

		EmailAPIKey:  getEnv("EMAIL_API_KEY", ""),
		EmailSender:  getEnv("EMAIL_SENDER", "no-reply@localhost"),
		EmailBaseURL: getEnv("EMAIL_BASE_URL", "http://localhost:8080"),

		StorageDriver: getEnv("STORAGE_DRIVER", "disk"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads/images"),
		S3Bucket:      getEnv("S3_BUCKET", ""),
		S3Region:      getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:    getEnv("S3_ENDPOINT", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
