package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Server struct {
		Port    string
		GinMode string
	}

	Auth struct {
		JWTSecret   string
		TokenExpiry int64 // hours
	}

	Storage struct {
		Endpoint    string
		AccessKey   string
		SecretKey   string
		Bucket      string
		UseSSL      bool
		MaxFileSize int64
	}

	Classifier struct {
		URL            string
		TimeoutSeconds int64
	}

	Events struct {
		EnforceCapacity bool
	}

	CORS struct {
		AllowOrigins string
		AllowMethods string
		AllowHeaders string
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{}

	config.DB.Host = getEnv("DB_HOST", "localhost")
	config.DB.Port = getEnv("DB_PORT", "5432")
	config.DB.User = getEnv("DB_USER", "ecotrack")
	config.DB.Password = getEnv("DB_PASSWORD", "ecotrack_password")
	config.DB.Name = getEnv("DB_NAME", "ecotrack_db")
	config.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	config.Server.Port = getEnv("PORT", "8080")
	config.Server.GinMode = getEnv("GIN_MODE", "debug")

	config.Auth.JWTSecret = getEnv("JWT_SECRET", "ecotrack-dev-secret")
	config.Auth.TokenExpiry = getEnvAsInt64("JWT_EXPIRY_HOURS", 168)

	config.Storage.Endpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	config.Storage.AccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	config.Storage.SecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	config.Storage.Bucket = getEnv("MINIO_BUCKET", "waste-images")
	config.Storage.UseSSL = getEnvAsBool("MINIO_USE_SSL", false)
	config.Storage.MaxFileSize = getEnvAsInt64("MAX_FILE_SIZE", 10485760)

	config.Classifier.URL = getEnv("CLASSIFIER_URL", "http://localhost:8000")
	config.Classifier.TimeoutSeconds = getEnvAsInt64("CLASSIFIER_TIMEOUT_SECONDS", 30)

	config.Events.EnforceCapacity = getEnvAsBool("EVENT_CAPACITY_ENFORCED", false)

	config.CORS.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
	config.CORS.AllowMethods = getEnv("CORS_ALLOW_METHODS", "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS")
	config.CORS.AllowHeaders = getEnv("CORS_ALLOW_HEADERS", "Origin,Content-Length,Content-Type,Authorization")

	return config
}

// GetDatabaseURL returns the database connection URL
func (c *Config) GetDatabaseURL() string {
	return "postgres://" + c.DB.User + ":" + c.DB.Password + "@" + c.DB.Host + ":" + c.DB.Port + "/" + c.DB.Name + "?sslmode=" + c.DB.SSLMode
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 gets an environment variable as int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
