package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mroshb/trivia_bot/internal/game"
)

// AnswerKeyboard creates the True/False inline keyboard for the question at
// index. The index rides along in the callback data so late taps on an old
// question can be told apart from answers to the current one.
func AnswerKeyboard(index int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ True", fmt.Sprintf("tv_ans_%d_%s", index, game.AnswerTrue)),
			tgbotapi.NewInlineKeyboardButtonData("❌ False", fmt.Sprintf("tv_ans_%d_%s", index, game.AnswerFalse)),
		),
	)
}
