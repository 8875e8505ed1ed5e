package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mroshb/trivia_bot/internal/config"
	"github.com/mroshb/trivia_bot/internal/database"
	"github.com/mroshb/trivia_bot/internal/game"
	"github.com/mroshb/trivia_bot/internal/handlers"
	"github.com/mroshb/trivia_bot/internal/repositories"
	"github.com/mroshb/trivia_bot/internal/trivia"
	"github.com/mroshb/trivia_bot/pkg/logger"
	"github.com/mroshb/trivia_bot/telegram"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize logger
	logger.Init()
	defer logger.Sync()

	logger.Info("Starting Trivia Bot...")

	// Load configuration; a missing bot token is fatal
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	// OpenTDB is the primary question source
	var source game.QuestionSource = trivia.NewClient(cfg.GetProviderTimeout())

	// The local question bank backs it up when database credentials are set
	if cfg.QuestionBankEnabled() {
		db, err := database.Connect(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", err)
		}

		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to run migrations", err)
		}

		if err := database.SeedQuestions(db); err != nil {
			logger.Warn("Failed to seed questions", "error", err)
		}

		questionRepo := repositories.NewQuestionRepository(db)
		source = trivia.Fallback(source, trivia.NewBankSource(questionRepo))
		logger.Info("Question bank fallback enabled")
	}

	// Initialize handler manager with an empty game registry
	handlerMgr := handlers.NewHandlerManager(cfg, game.NewRegistry(), source)

	// Initialize and start Telegram bot
	bot, err := telegram.InitBot(cfg, handlerMgr)
	if err != nil {
		logger.Fatal("Failed to initialize bot", err)
	}

	logger.Info("Bot started successfully", "env", cfg.AppEnv)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	bot.Stop()
	logger.Info("Bot stopped")
}
