package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleTriviaCallbacks handles all trivia related callbacks
func (b *Bot) HandleTriviaCallbacks(query *tgbotapi.CallbackQuery, data string) bool {
	// Answer buttons under a question
	if strings.HasPrefix(data, "tv_ans_") {
		if query.Message == nil {
			return true
		}

		var index int
		var value string
		if _, err := fmt.Sscanf(data, "tv_ans_%d_%s", &index, &value); err != nil {
			b.AnswerCallbackQuery(query.ID, "", false)
			return true
		}

		b.handlers.HandleAnswerCallback(
			query.Message.Chat.ID,
			query.From.ID,
			displayName(query.From),
			query.ID,
			index,
			value,
			b,
		)
		return true
	}

	return false
}
