package config

import (
	"os"
	"testing"

	"github.com/mroshb/trivia_bot/internal/trivia"
	"github.com/mroshb/trivia_bot/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	os.Clearenv()
	os.Setenv("BOT_TOKEN", "test_bot_token")
	defer os.Unsetenv("BOT_TOKEN")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.BotToken != "test_bot_token" {
		t.Errorf("BotToken = %q, want %q", cfg.BotToken, "test_bot_token")
	}
	if cfg.DefaultQuestionCount != 5 {
		t.Errorf("DefaultQuestionCount = %d, want 5", cfg.DefaultQuestionCount)
	}
	if cfg.DefaultDifficulty != trivia.DifficultyEasy {
		t.Errorf("DefaultDifficulty = %q, want easy", cfg.DefaultDifficulty)
	}
	if cfg.DefaultCategory != trivia.CategoryGeneral {
		t.Errorf("DefaultCategory = %q, want general", cfg.DefaultCategory)
	}
	if cfg.QuestionTimerSeconds != 0 {
		t.Errorf("QuestionTimerSeconds = %d, want 0 (timer off)", cfg.QuestionTimerSeconds)
	}
}

func TestLoadConfig_MissingToken(t *testing.T) {
	os.Clearenv()

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig() expected error for missing BOT_TOKEN, got nil")
	}
	if errors.Code(err) != errors.ErrCodeConfiguration {
		t.Errorf("error code = %q, want %q", errors.Code(err), errors.ErrCodeConfiguration)
	}
}

func TestLoadConfig_InvalidAnnounceChatID(t *testing.T) {
	os.Clearenv()
	os.Setenv("BOT_TOKEN", "token")
	os.Setenv("ANNOUNCE_CHAT_ID", "not-a-number")
	defer os.Clearenv()

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig() expected error for invalid ANNOUNCE_CHAT_ID, got nil")
	}
	if errors.Code(err) != errors.ErrCodeConfiguration {
		t.Errorf("error code = %q, want %q", errors.Code(err), errors.ErrCodeConfiguration)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		shouldErr bool
	}{
		{
			name:      "valid",
			cfg:       &Config{BotToken: "token", DefaultQuestionCount: 5},
			shouldErr: false,
		},
		{
			name:      "missing token",
			cfg:       &Config{DefaultQuestionCount: 5},
			shouldErr: true,
		},
		{
			name:      "question count too low",
			cfg:       &Config{BotToken: "token", DefaultQuestionCount: 0},
			shouldErr: true,
		},
		{
			name:      "question count too high",
			cfg:       &Config{BotToken: "token", DefaultQuestionCount: 101},
			shouldErr: true,
		},
		{
			name:      "negative timer",
			cfg:       &Config{BotToken: "token", DefaultQuestionCount: 5, QuestionTimerSeconds: -1},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.shouldErr && err == nil {
				t.Error("Validate() expected error, got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestQuestionBankEnabled(t *testing.T) {
	cfg := &Config{}
	if cfg.QuestionBankEnabled() {
		t.Error("bank enabled without DB password")
	}

	cfg.DBPassword = "secret"
	if !cfg.QuestionBankEnabled() {
		t.Error("bank disabled although DB password is set")
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "testuser",
		DBPassword: "testpass",
		DBName:     "testdb",
		DBSSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	if dsn := cfg.GetDSN(); dsn != expected {
		t.Errorf("GetDSN() = %q, want %q", dsn, expected)
	}
}
