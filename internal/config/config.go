package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mroshb/trivia_bot/internal/trivia"
	"github.com/mroshb/trivia_bot/pkg/errors"
)

type Config struct {
	// Telegram
	BotToken       string
	AnnounceChatID int64

	// Question bank database (optional, bank disabled when no password is set)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Application
	AppEnv   string
	LogLevel string

	// Round defaults
	DefaultQuestionCount int
	DefaultDifficulty    string
	DefaultCategory      string

	// Seconds before an unanswered question is skipped, 0 disables the timer
	QuestionTimerSeconds int

	// Question provider
	ProviderTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		BotToken:   getEnv("BOT_TOKEN", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "triviabot"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "triviabot_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DefaultQuestionCount: getEnvInt("DEFAULT_QUESTION_COUNT", 5),
		DefaultDifficulty:    getEnv("DEFAULT_DIFFICULTY", trivia.DifficultyEasy),
		DefaultCategory:      getEnv("DEFAULT_CATEGORY", trivia.CategoryGeneral),

		QuestionTimerSeconds:   getEnvInt("QUESTION_TIMER_SECONDS", 0),
		ProviderTimeoutSeconds: getEnvInt("PROVIDER_TIMEOUT_SECONDS", 10),
	}

	// Parse announce chat ID
	announceStr := getEnv("ANNOUNCE_CHAT_ID", "")
	if announceStr != "" {
		id, err := strconv.ParseInt(announceStr, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfiguration, "invalid ANNOUNCE_CHAT_ID")
		}
		cfg.AnnounceChatID = id
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BotToken == "" {
		return errors.New(errors.ErrCodeConfiguration, "BOT_TOKEN is required")
	}
	if c.DefaultQuestionCount < 1 || c.DefaultQuestionCount > 100 {
		return errors.New(errors.ErrCodeConfiguration, "DEFAULT_QUESTION_COUNT must be between 1 and 100")
	}
	if c.QuestionTimerSeconds < 0 {
		return errors.New(errors.ErrCodeConfiguration, "QUESTION_TIMER_SECONDS must not be negative")
	}
	return nil
}

// QuestionBankEnabled reports whether the local question bank should be
// wired up as a fallback source.
func (c *Config) QuestionBankEnabled() bool {
	return c.DBPassword != ""
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) GetQuestionTimer() time.Duration {
	return time.Duration(c.QuestionTimerSeconds) * time.Second
}

func (c *Config) GetProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
