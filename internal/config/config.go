package config

import (
	"fmt"
	"os"
	"strconv"

	"wordquiz/pkg/validator"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	Env      string         `validate:"oneof=development production"`
	Database DatabaseConfig `validate:"required"`
	Quiz     QuizConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	Name     string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`
	SSLMode  string `validate:"oneof=disable require verify-full"`
}

// QuizConfig holds quiz and listing sizes
type QuizConfig struct {
	PadSize     int `validate:"min=0,max=50"`
	Distractors int `validate:"min=0,max=9"`
	PageSize    int `validate:"min=1,max=50"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	padSize, err := getEnvInt("QUIZ_PAD_SIZE", 5)
	if err != nil {
		return nil, err
	}
	distractors, err := getEnvInt("QUIZ_DISTRACTORS", 3)
	if err != nil {
		return nil, err
	}
	pageSize, err := getEnvInt("LIST_PAGE_SIZE", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Env:      getEnv("APP_ENV", EnvProduction),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vocabulary"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Quiz: QuizConfig{
			PadSize:     padSize,
			Distractors: distractors,
			PageSize:    pageSize,
		},
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ValidateBot checks the settings only the Telegram bot needs
func (c *Config) ValidateBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
