package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	// Server configuration
	AppPort            string `yaml:"APP_PORT" env:"APP_PORT" env-default:"8080"`
	RateLimitPerSecond int    `yaml:"RATE_LIMIT_PER_SECOND" env:"RATE_LIMIT_PER_SECOND" env-default:"10"`
	LogLevel           string `yaml:"LOG_LEVEL" env:"LOG_LEVEL" env-default:"info"`
	LogFile            string `yaml:"LOG_FILE" env:"LOG_FILE" env-default:"./logs/app.log"`

	// Storage configuration: sqlite, postgres or memory
	StorageDriver string `yaml:"STORAGE_DRIVER" env:"STORAGE_DRIVER" env-default:"sqlite"`
	SQLitePath    string `yaml:"SQLITE_PATH" env:"SQLITE_PATH" env-default:"./data/fridgemate.db"`

	// Database configuration, used by the postgres driver
	DBUser     string `yaml:"DB_USER" env:"DB_USER"`
	DBName     string `yaml:"DB_NAME" env:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD" env:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" env:"DB_PORT" env-default:"5432"`
	DBHost     string `yaml:"DB_HOST" env:"DB_HOST"`

	// AWS S3 configuration for recipe export backups
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET" env:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION" env:"AWS_S3_REGION" env-default:"ap-northeast-2"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY" env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY" env:"AWS_SECRET_KEY"`
	ExportPrefix string `yaml:"EXPORT_PREFIX" env:"EXPORT_PREFIX" env-default:"fridgemate"`
}

// LoadConfig reads the yaml file at path. Environment variables win over the
// file and env-default tags fill what neither sets. A missing file leaves
// environment and defaults only.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return cfg, fmt.Errorf("config: stat %s: %w", path, err)
	}

	return cfg, nil
}
