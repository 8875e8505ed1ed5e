package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/mroshb/trivia_bot/internal/game"
	"github.com/mroshb/trivia_bot/pkg/logger"
)

func playerKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// HandleJoin adds the user to the roster of the chat's game, creating the
// game on first join.
func (h *HandlerManager) HandleJoin(chatID, userID int64, name string, bot BotInterface) {
	state := h.Games.GetOrCreate(chatID)

	result := state.Join(playerKey(userID), name)
	switch result.Status {
	case game.Joined:
		logger.Debug("Player joined", "chat_id", chatID, "user_id", userID, "roster", result.RosterSize)
		bot.SendMessage(chatID, joinedMessage(name, result.RosterSize), nil)
	case game.AlreadyJoined:
		bot.SendMessage(chatID, alreadyJoinedMessage(name, result.RosterSize), nil)
	case game.GameAlreadyRunning:
		bot.SendMessage(chatID, MsgAlreadyRunning, nil)
	}
}

// HandleStart starts a round. Arguments arrive validated and clamped by the
// command schema; amount is always in [1, 100].
func (h *HandlerManager) HandleStart(chatID int64, amount int, difficulty, category string, bot BotInterface) {
	state, ok := h.Games.Get(chatID, true)
	if !ok {
		bot.SendMessage(chatID, MsgGameNotFound, nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.Config.GetProviderTimeout())
	defer cancel()

	result, err := state.Start(ctx, game.StartOptions{
		Amount:     amount,
		Category:   category,
		Difficulty: difficulty,
	}, h.Questions)
	if err != nil {
		logger.Error("Failed to start round", "chat_id", chatID, "error", err)
		bot.SendMessage(chatID, MsgFetchFailed, nil)
		return
	}
	switch result.Status {
	case game.AlreadyRunning:
		bot.SendMessage(chatID, MsgAlreadyRunning, nil)
		return
	case game.Aborted:
		bot.SendMessage(chatID, MsgStartCancelled, nil)
		return
	}

	logger.Info("Round started",
		"chat_id", chatID,
		"round_id", result.RoundID,
		"questions", result.Total,
		"difficulty", difficulty,
		"category", category,
	)
	h.presentQuestion(chatID, *result.First, 0, result.Total, result.RoundID, bot)
}

// HandleAnswer scores a /answer command against the current question.
func (h *HandlerManager) HandleAnswer(chatID, userID int64, name, value string, bot BotInterface) {
	state, ok := h.Games.Get(chatID, true)
	if !ok {
		bot.SendMessage(chatID, MsgGameNotFound, nil)
		return
	}

	h.resolveAnswer(chatID, state, playerKey(userID), name, value, bot)
}

// HandleAnswerCallback scores a tap on a question's inline keyboard. Taps on
// a question that has already been advanced past get a toast instead of
// being scored against the newer question.
func (h *HandlerManager) HandleAnswerCallback(chatID, userID int64, name, queryID string, index int, value string, bot BotInterface) {
	state, ok := h.Games.Get(chatID, true)
	if !ok {
		bot.AnswerCallbackQuery(queryID, "No game in this chat anymore.", false)
		return
	}

	if _, current, active := state.CurrentQuestion(); !active || current != index {
		bot.AnswerCallbackQuery(queryID, "⏱ Too slow — that question is gone.", false)
		return
	}

	bot.AnswerCallbackQuery(queryID, "", false)
	h.resolveAnswer(chatID, state, playerKey(userID), name, value, bot)
}

func (h *HandlerManager) resolveAnswer(chatID int64, state *game.State, playerID, name, value string, bot BotInterface) {
	result := state.SubmitAnswer(playerID, value)

	switch result.Status {
	case game.GameAlreadyEnded:
		bot.SendMessage(chatID, MsgGameOver, nil)
	case game.NotInGame:
		bot.SendMessage(chatID, MsgNotInGame, nil)
	case game.Incorrect:
		bot.SendMessage(chatID, MsgIncorrect, nil)
	case game.Correct:
		bot.SendMessage(chatID, correctMessage(name, result.NewScore), nil)
		if result.Finished {
			logger.Info("Round finished", "chat_id", chatID, "round_id", state.RoundID())
			bot.SendMessage(chatID, roundFinishedMessage(state.Leaderboard()), nil)
			return
		}
		h.presentQuestion(chatID, *result.Next, result.NextIndex, state.QuestionCount(), state.RoundID(), bot)
	}
}

// HandleLeaderboard shows the standings; it works in every state, including
// after the round has ended.
func (h *HandlerManager) HandleLeaderboard(chatID int64, bot BotInterface) {
	state, ok := h.Games.Get(chatID, true)
	if !ok {
		bot.SendMessage(chatID, MsgGameNotFound, nil)
		return
	}

	bot.SendMessage(chatID, leaderboardMessage(state.Leaderboard()), nil)
}

// HandleReset abandons the current round, keeping the roster and scores.
func (h *HandlerManager) HandleReset(chatID int64, bot BotInterface) {
	state, ok := h.Games.Get(chatID, true)
	if !ok {
		bot.SendMessage(chatID, MsgNothingToReset, nil)
		return
	}

	state.Reset()
	bot.SendMessage(chatID, MsgResetDone, nil)
}

func (h *HandlerManager) HandleHelp(chatID int64, bot BotInterface) {
	bot.SendMessage(chatID, MsgHelp, nil)
}

func (h *HandlerManager) presentQuestion(chatID int64, q game.Question, index, total int, roundID string, bot BotInterface) {
	text := questionMessage(q, index, total)
	messageID := bot.SendMessage(chatID, text, AnswerKeyboard(index))

	if timer := h.Config.GetQuestionTimer(); timer > 0 {
		h.scheduleExpiry(chatID, roundID, index, messageID, text, timer, bot)
	}
}

func (h *HandlerManager) scheduleExpiry(chatID int64, roundID string, index, messageID int, text string, after time.Duration, bot BotInterface) {
	time.AfterFunc(after, func() {
		h.expireQuestion(chatID, roundID, index, messageID, text, bot)
	})
}

// expireQuestion skips the question at index if it is still unanswered when
// the timer fires. The round id guards against a timer from a previous round
// firing into a newer one after a reset.
func (h *HandlerManager) expireQuestion(chatID int64, roundID string, index, messageID int, text string, bot BotInterface) {
	state, ok := h.Games.Get(chatID, false)
	if !ok || state.RoundID() != roundID {
		return
	}

	result := state.SkipIfCurrent(index)
	if !result.Skipped {
		return
	}

	// Rewrite the question message without its keyboard; the expired
	// question can no longer be tapped.
	if messageID != 0 {
		bot.EditMessage(chatID, messageID, expiredQuestionMessage(text), nil)
	}

	if result.Finished {
		logger.Info("Round finished by timer", "chat_id", chatID, "round_id", roundID)
		bot.SendMessage(chatID, roundFinishedMessage(state.Leaderboard()), nil)
		return
	}
	h.presentQuestion(chatID, *result.Next, result.NextIndex, state.QuestionCount(), roundID, bot)
}
