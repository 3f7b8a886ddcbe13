package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/shared/apperror"
)

// SourceKind selects where the hr_data table is loaded from.
type SourceKind string

const (
	SourceCSV      SourceKind = "csv"
	SourcePostgres SourceKind = "postgres"
)

type Config struct {
	Source      SourceKind `validate:"required,oneof=csv postgres"`
	DatasetPath string     `validate:"required_if=Source csv"`

	DBHost     string `validate:"required_if=Source postgres"`
	DBUser     string `validate:"required_if=Source postgres"`
	DBPassword string
	DBName     string `validate:"required_if=Source postgres"`
	DBPort     string
	DBSSLMode  string
	DBTable    string

	MaxRetries int `validate:"gte=1"`
	LogLevel   string
}

// FromEnv builds a Config from environment variables. godotenv.Load is the
// caller's responsibility (done once in main).
func FromEnv() (*Config, error) {
	cfg := &Config{
		Source:      SourceKind(getEnv("HR_SOURCE", "csv")),
		DatasetPath: os.Getenv("HR_DATASET_PATH"),
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		DBTable:     getEnv("DB_TABLE", "hr_data"),
		MaxRetries:  getEnvInt("DB_MAX_RETRIES", 5),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = func() *validator.Validate {
	v := validator.New()
	apperror.Init(v)
	return v
}()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
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
