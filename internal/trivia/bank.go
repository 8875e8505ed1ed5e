package trivia

import (
	"context"

	"github.com/mroshb/trivia_bot/internal/game"
	"github.com/mroshb/trivia_bot/internal/models"
	"github.com/mroshb/trivia_bot/pkg/errors"
)

// QuestionStore is the slice of the question repository the bank source needs.
type QuestionStore interface {
	RandomQuestions(count int, category, difficulty string) ([]models.TriviaQuestion, error)
}

// BankSource serves questions from the local database bank. It backs up the
// OpenTDB provider when the network is down or the provider has nothing for
// the requested filter.
type BankSource struct {
	store QuestionStore
}

func NewBankSource(store QuestionStore) *BankSource {
	return &BankSource{store: store}
}

func (b *BankSource) FetchQuestions(_ context.Context, req game.FetchRequest) ([]game.Question, error) {
	records, err := b.store.RandomQuestions(req.Amount, req.Category, req.Difficulty)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeQuestionFetch, "question bank query failed")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeQuestionFetch, "question bank has no matching questions")
	}

	questions := make([]game.Question, 0, len(records))
	for _, record := range records {
		questions = append(questions, game.NewBinaryQuestion(record.QuestionText, record.CorrectAnswer))
	}
	return questions, nil
}
