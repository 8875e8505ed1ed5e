package game

import "context"

// Answer values for true/false questions. Every question presented by the bot
// carries exactly these two choices, and answers are matched verbatim.
const (
	AnswerTrue  = "True"
	AnswerFalse = "False"
)

// BinaryChoices returns the fixed choice list for a true/false question.
func BinaryChoices() []string {
	return []string{AnswerTrue, AnswerFalse}
}

// Question is an immutable trivia question. CorrectAnswer is always one of
// Choices.
type Question struct {
	Text          string
	Choices       []string
	CorrectAnswer string
}

// NewBinaryQuestion builds a true/false question.
func NewBinaryQuestion(text, correctAnswer string) Question {
	return Question{
		Text:          text,
		Choices:       BinaryChoices(),
		CorrectAnswer: correctAnswer,
	}
}

// FetchRequest describes one batch of questions to pull from a provider.
// Amount must already be clamped to [1, 100] by the caller.
type FetchRequest struct {
	Amount     int
	Category   string
	Difficulty string
}

// QuestionSource supplies true/false questions for a round. Implementations
// may be remote (OpenTDB) or local (the database question bank).
type QuestionSource interface {
	FetchQuestions(ctx context.Context, req FetchRequest) ([]Question, error)
}
