package handlers

import (
	"github.com/mroshb/trivia_bot/internal/config"
	"github.com/mroshb/trivia_bot/internal/game"
)

// BotInterface is the slice of the Telegram bot the handlers need, kept small
// so tests can substitute a recorder.
type BotInterface interface {
	SendMessage(chatID int64, text string, keyboard interface{}) int
	EditMessage(chatID int64, messageID int, text string, keyboard interface{})
	AnswerCallbackQuery(queryID string, text string, showAlert bool)
}

type HandlerManager struct {
	Config    *config.Config
	Games     *game.Registry
	Questions game.QuestionSource
}

func NewHandlerManager(cfg *config.Config, games *game.Registry, questions game.QuestionSource) *HandlerManager {
	return &HandlerManager{
		Config:    cfg,
		Games:     games,
		Questions: questions,
	}
}
