package common

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Ingest   IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds configuration for the OCR provider chain.
type OCRConfig struct {
	OCRSpaceAPIKey string
	OCRSpaceURL    string
	OCRSpaceEngine int
	Language       string

	GeminiAPIKey string
	GeminiModel  string

	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string

	RequestTimeout time.Duration

	// AllowMock admits the fabricated demo provider at the end of the chain.
	// Development only; the production constructor path ignores it.
	AllowMock bool
}

// IngestConfig drives the background watcher and worker pool.
type IngestConfig struct {
	// WatchDirs are roots to watch for new receipt files; empty disables the watcher.
	WatchDirs []string
	Workers   int
	QueueSize int
	// ProcessTimeout bounds one file's trip through the pipeline.
	ProcessTimeout  time.Duration
	Debounce        time.Duration
	DefaultProfile  string
	DefaultCurrency string
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is merged in first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			OCRSpaceAPIKey: getEnv("OCRSPACE_API_KEY", ""),
			OCRSpaceURL:    getEnv("OCRSPACE_URL", "https://api.ocr.space/parse/image"),
			OCRSpaceEngine: getEnvAsInt("OCRSPACE_ENGINE", 2),
			Language:       getEnv("OCR_LANGUAGE", "eng"),
			GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
			GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Tesseract:      getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang:  getEnv("TESSERACT_LANG", "eng"),
			RequestTimeout: getEnvAsDuration("OCR_REQUEST_TIMEOUT", 30*time.Second),
			AllowMock:      getEnvAsBool("OCR_ALLOW_MOCK", false),
		},
		Ingest: IngestConfig{
			WatchDirs:       splitList(getEnv("WATCH_DIRS", "")),
			Workers:         getEnvAsInt("INGEST_WORKERS", 4),
			QueueSize:       getEnvAsInt("INGEST_QUEUE_SIZE", 256),
			ProcessTimeout:  getEnvAsDuration("INGEST_PROCESS_TIMEOUT", 3*time.Minute),
			Debounce:        getEnvAsDuration("INGEST_DEBOUNCE", 500*time.Millisecond),
			DefaultProfile:  getEnv("INGEST_DEFAULT_PROFILE", "Local Batch"),
			DefaultCurrency: getEnv("INGEST_DEFAULT_CURRENCY", "USD"),
		},
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.OCR.OCRSpaceAPIKey == "" && c.OCR.GeminiAPIKey == "" {
		return NewAppError("CONFIG_ERROR", "at least one OCR provider key is required (OCRSPACE_API_KEY or GEMINI_API_KEY)", ErrInvalidInput)
	}
	return nil
}
