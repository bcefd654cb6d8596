package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	LogLevel    string
	Timezone    string
	Location    *time.Location
	Database    DatabaseConfig
	Vocabulary  VocabularyConfig
	Quiz        QuizConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// VocabularyConfig controls how the in-memory store is seeded
type VocabularyConfig struct {
	// SeedFile overrides the bundled word list when set
	SeedFile          string
	DefaultFolderName string
	DefaultModuleName string
}

// QuizConfig holds quiz round sizes
type QuizConfig struct {
	Questions     int
	Options       int
	MatchingPairs int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Timezone:    getEnv("TIMEZONE", "UTC"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "flashword"),
			User:     getEnv("DB_USER", "flashword"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Vocabulary: VocabularyConfig{
			SeedFile:          os.Getenv("SEED_FILE"),
			DefaultFolderName: getEnv("DEFAULT_FOLDER_NAME", "Default Folder"),
			DefaultModuleName: getEnv("DEFAULT_MODULE_NAME", "Default Module"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	// The name also goes to Postgres, so only IANA names are accepted
	if cfg.Timezone == "Local" {
		return nil, fmt.Errorf("TIMEZONE must be an IANA time zone name")
	}
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE is invalid: %w", err)
	}
	cfg.Location = location

	if cfg.Quiz.Questions, err = getEnvInt("QUIZ_QUESTIONS", 10, 1); err != nil {
		return nil, err
	}
	if cfg.Quiz.Options, err = getEnvInt("QUIZ_OPTIONS", 4, 2); err != nil {
		return nil, err
	}
	if cfg.Quiz.MatchingPairs, err = getEnvInt("MATCHING_PAIRS", 6, 1); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an integer variable that must be at least minValue
func getEnvInt(key string, defaultValue, minValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if value < minValue {
		return 0, fmt.Errorf("%s must be at least %d", key, minValue)
	}
	return value, nil
}
