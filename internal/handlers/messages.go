package handlers

import (
	"fmt"
	"html"
	"strings"

	"github.com/mroshb/trivia_bot/internal/game"
)

const (
	MsgGameNotFound = "🤷 There is no trivia game in this chat yet. Use /join to open one!"
	MsgHelp         = "🎲 <b>Trivia Bot</b>\n\n" +
		"/join — join the game in this chat\n" +
		"/trivia [amount] [difficulty] [category] — start a round\n" +
		"/answer True|False — answer the current question\n" +
		"/leaderboard — current standings\n" +
		"/reset — abandon the current round\n" +
		"/help — this message"
	MsgAlreadyRunning  = "⚠️ The game has already started, wait for the next round!"
	MsgGameOver        = "🏁 No question is waiting for an answer. Start a new round with /trivia!"
	MsgNotInGame       = "🙅 You are not in this game. Players who join after the round starts have to sit it out."
	MsgIncorrect       = "❌ <b>NOPE!</b>"
	MsgFetchFailed     = "😞 Could not fetch questions right now, the round was not started. Try again in a bit."
	MsgResetDone       = "🔄 Round abandoned. The roster and scores are kept, start fresh with /trivia."
	MsgNothingToReset  = "🤷 Nothing to reset, no round is in progress."
	MsgStartCancelled  = "🔄 The round was reset before the questions arrived, nothing started."
	MsgStartupAnnounce = "🎲 <b>Trivia Bot is online!</b>\nJoin with /join and start a round with /trivia."
	MsgAnswerUsage     = "✍️ Answer with /answer True or /answer False, or tap a button under the question."
)

func joinedMessage(name string, rosterSize int) string {
	return fmt.Sprintf("🙌 <b>%s</b>, you have joined!\n<b>%d</b> player(s) waiting in line...\nWhen everyone is ready, type /trivia to begin.",
		html.EscapeString(name), rosterSize)
}

func alreadyJoinedMessage(name string, rosterSize int) string {
	return fmt.Sprintf("😅 <b>%s</b>, you have already joined!\n<b>%d</b> player(s) waiting in line...",
		html.EscapeString(name), rosterSize)
}

func questionMessage(q game.Question, index, total int) string {
	return fmt.Sprintf("❓ <b>Question %d of %d</b>\n\n%s\n\n<b>Choices</b>: %s",
		index+1, total, html.EscapeString(q.Text), strings.Join(q.Choices, ", "))
}

func correctMessage(name string, newScore int) string {
	return fmt.Sprintf("✅ <b>%s GOT THE QUESTION!</b> (score: %d)", html.EscapeString(name), newScore)
}

func expiredQuestionMessage(questionText string) string {
	return questionText + "\n\n⌛️ Time's up! Nobody got that one."
}

func leaderboardMessage(entries []game.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "📊 <b>LEADERBOARD</b>\n\nNobody has joined yet."
	}

	var sb strings.Builder
	sb.WriteString("📊 <b>LEADERBOARD</b>\n\n")
	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("%d. %s — %d\n", i+1, html.EscapeString(entry.Name), entry.Score))
	}
	return sb.String()
}

func roundFinishedMessage(entries []game.LeaderboardEntry) string {
	return "🏁 <b>That was the last question!</b>\n\n" + leaderboardMessage(entries)
}
