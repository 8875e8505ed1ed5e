package trivia

import (
	"context"
	"os"
	"testing"

	"github.com/mroshb/trivia_bot/internal/game"
	"github.com/mroshb/trivia_bot/internal/models"
	"github.com/mroshb/trivia_bot/pkg/errors"
	"github.com/mroshb/trivia_bot/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type stubSource struct {
	questions []game.Question
	err       error
	calls     int
}

func (s *stubSource) FetchQuestions(_ context.Context, _ game.FetchRequest) ([]game.Question, error) {
	s.calls++
	return s.questions, s.err
}

func TestFallback_PrimaryWins(t *testing.T) {
	primary := &stubSource{questions: []game.Question{game.NewBinaryQuestion("Q1", "True")}}
	secondary := &stubSource{questions: []game.Question{game.NewBinaryQuestion("Q2", "False")}}

	questions, err := Fallback(primary, secondary).FetchQuestions(context.Background(), game.FetchRequest{Amount: 1})
	if err != nil {
		t.Fatalf("FetchQuestions() error = %v", err)
	}
	if questions[0].Text != "Q1" {
		t.Errorf("question = %q, want primary's Q1", questions[0].Text)
	}
	if secondary.calls != 0 {
		t.Errorf("fallback was called %d times although primary succeeded", secondary.calls)
	}
}

func TestFallback_PrimaryFails(t *testing.T) {
	tests := []struct {
		name    string
		primary *stubSource
	}{
		{
			name:    "primary errors",
			primary: &stubSource{err: errors.New(errors.ErrCodeQuestionFetch, "down")},
		},
		{
			name:    "primary empty",
			primary: &stubSource{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secondary := &stubSource{questions: []game.Question{game.NewBinaryQuestion("Q2", "False")}}

			questions, err := Fallback(tt.primary, secondary).FetchQuestions(context.Background(), game.FetchRequest{Amount: 1})
			if err != nil {
				t.Fatalf("FetchQuestions() error = %v", err)
			}
			if len(questions) != 1 || questions[0].Text != "Q2" {
				t.Errorf("questions = %+v, want fallback's Q2", questions)
			}
		})
	}
}

type stubStore struct {
	records []models.TriviaQuestion
	err     error
}

func (s *stubStore) RandomQuestions(count int, category, difficulty string) ([]models.TriviaQuestion, error) {
	if s.err != nil {
		return nil, s.err
	}
	if count < len(s.records) {
		return s.records[:count], nil
	}
	return s.records, nil
}

func TestBankSource(t *testing.T) {
	store := &stubStore{records: []models.TriviaQuestion{
		{QuestionText: "Q1", CorrectAnswer: "True"},
		{QuestionText: "Q2", CorrectAnswer: "False"},
	}}

	questions, err := NewBankSource(store).FetchQuestions(context.Background(), game.FetchRequest{Amount: 2})
	if err != nil {
		t.Fatalf("FetchQuestions() error = %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].CorrectAnswer != game.AnswerTrue || len(questions[0].Choices) != 2 {
		t.Errorf("question = %+v", questions[0])
	}
}

func TestBankSource_Empty(t *testing.T) {
	_, err := NewBankSource(&stubStore{}).FetchQuestions(context.Background(), game.FetchRequest{Amount: 5})
	if err == nil {
		t.Fatal("expected error for empty bank")
	}
	if errors.Code(err) != errors.ErrCodeQuestionFetch {
		t.Errorf("error code = %q, want %q", errors.Code(err), errors.ErrCodeQuestionFetch)
	}
}
