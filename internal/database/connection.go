package database

import (
	"fmt"
	"time"

	"github.com/mroshb/trivia_bot/internal/config"
	"github.com/mroshb/trivia_bot/internal/models"
	"github.com/mroshb/trivia_bot/internal/trivia"
	"github.com/mroshb/trivia_bot/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	var logLevel gormlogger.LogLevel
	if cfg.AppEnv == "development" {
		logLevel = gormlogger.Info
	} else {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// The bank only serves question batches, a small pool is plenty.
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	logger.Info("Database connected successfully")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	if err := db.AutoMigrate(&models.TriviaQuestion{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// SeedQuestions fills the bank with a starter set so the fallback source has
// something to serve before any import runs.
func SeedQuestions(db *gorm.DB) error {
	var count int64
	db.Model(&models.TriviaQuestion{}).Count(&count)
	if count > 0 {
		return nil
	}

	logger.Info("Seeding starter trivia questions...")
	questions := []models.TriviaQuestion{
		{QuestionText: "The Linux kernel was first released in 1991.", Category: trivia.CategoryComputers, Difficulty: trivia.DifficultyEasy, CorrectAnswer: "True"},
		{QuestionText: "HTML is a programming language.", Category: trivia.CategoryComputers, Difficulty: trivia.DifficultyEasy, CorrectAnswer: "False"},
		{QuestionText: "The first computer mouse was made of wood.", Category: trivia.CategoryComputers, Difficulty: trivia.DifficultyMedium, CorrectAnswer: "True"},
		{QuestionText: "RAM loses its contents when the power is turned off.", Category: trivia.CategoryComputers, Difficulty: trivia.DifficultyEasy, CorrectAnswer: "True"},
		{QuestionText: "The Go programming language was created at Microsoft.", Category: trivia.CategoryComputers, Difficulty: trivia.DifficultyMedium, CorrectAnswer: "False"},
		{QuestionText: "IPv6 addresses are 128 bits long.", Category: trivia.CategoryComputers, Difficulty: trivia.DifficultyHard, CorrectAnswer: "True"},
		{QuestionText: "The Great Wall of China is visible from the Moon with the naked eye.", Category: trivia.CategoryGeneral, Difficulty: trivia.DifficultyEasy, CorrectAnswer: "False"},
		{QuestionText: "There are 50 states in the United States.", Category: trivia.CategoryGeneral, Difficulty: trivia.DifficultyEasy, CorrectAnswer: "True"},
		{QuestionText: "An octopus has three hearts.", Category: trivia.CategoryGeneral, Difficulty: trivia.DifficultyMedium, CorrectAnswer: "True"},
		{QuestionText: "The Sun rises in the west.", Category: trivia.CategoryGeneral, Difficulty: trivia.DifficultyEasy, CorrectAnswer: "False"},
		{QuestionText: "Venus is the hottest planet in the solar system.", Category: trivia.CategoryGeneral, Difficulty: trivia.DifficultyMedium, CorrectAnswer: "True"},
		{QuestionText: "Humans have more than five senses.", Category: trivia.CategoryGeneral, Difficulty: trivia.DifficultyHard, CorrectAnswer: "True"},
	}

	return db.Create(&questions).Error
}
